//go:build unit

package availability_test

import (
	"testing"
	"time"

	"ticketflo/internal/domain/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeRange(t *testing.T) {
	cases := []struct {
		name  string
		start int
		end   int
		errIs error
	}{
		{name: "business hours", start: 540, end: 1020},
		{name: "full day", start: 0, end: 1440},
		{name: "one minute", start: 0, end: 1},
		{name: "negative start", start: -10, end: 60, errIs: availability.ErrInvalidTimeRange},
		{name: "end past midnight", start: 540, end: 1441, errIs: availability.ErrInvalidTimeRange},
		{name: "start equals end", start: 540, end: 540, errIs: availability.ErrInvalidTimeRange},
		{name: "start after end", start: 600, end: 540, errIs: availability.ErrInvalidTimeRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := availability.NewTimeRange(tc.start, tc.end)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.start, r.Start())
			assert.Equal(t, tc.end, r.End())
			assert.Equal(t, tc.end-tc.start, r.Minutes())
		})
	}
}

func TestTimeRangeOverlaps(t *testing.T) {
	morning := mustRange(t, 540, 720)
	afternoon := mustRange(t, 780, 1020)
	straddle := mustRange(t, 700, 800)
	adjacent := mustRange(t, 720, 780)

	assert.False(t, morning.Overlaps(afternoon))
	assert.True(t, morning.Overlaps(straddle))
	assert.True(t, afternoon.Overlaps(straddle))
	// Half-open ranges: touching endpoints do not overlap.
	assert.False(t, morning.Overlaps(adjacent))
	assert.False(t, adjacent.Overlaps(afternoon))
}

func TestDaySchedule(t *testing.T) {
	t.Run("disabled day must be empty", func(t *testing.T) {
		day, err := availability.NewDaySchedule(false, nil)
		require.NoError(t, err)
		assert.False(t, day.Enabled())
		assert.Empty(t, day.Ranges())

		_, err = availability.NewDaySchedule(false, []availability.TimeRange{mustRange(t, 540, 600)})
		assert.ErrorIs(t, err, availability.ErrClosedDayRanges)
	})

	t.Run("enabled day needs at least one range", func(t *testing.T) {
		_, err := availability.NewDaySchedule(true, nil)
		assert.ErrorIs(t, err, availability.ErrOpenDayEmpty)
	})

	t.Run("overlapping ranges rejected at write time", func(t *testing.T) {
		_, err := availability.NewDaySchedule(true, []availability.TimeRange{
			mustRange(t, 540, 720),
			mustRange(t, 700, 800),
		})
		assert.ErrorIs(t, err, availability.ErrOverlappingRanges)
	})

	t.Run("range order is preserved, not sorted", func(t *testing.T) {
		day, err := availability.NewDaySchedule(true, []availability.TimeRange{
			mustRange(t, 780, 1020),
			mustRange(t, 540, 720),
		})
		require.NoError(t, err)

		ranges := day.Ranges()
		require.Len(t, ranges, 2)
		assert.Equal(t, 780, ranges[0].Start())
		assert.Equal(t, 540, ranges[1].Start())
	})
}

func TestWeeklySchedule(t *testing.T) {
	t.Run("requires all seven weekdays", func(t *testing.T) {
		days := map[time.Weekday]availability.DaySchedule{
			time.Monday: availability.ClosedDay(),
		}
		_, err := availability.NewWeeklySchedule(days)
		assert.ErrorIs(t, err, availability.ErrIncompleteWeek)
	})

	t.Run("closed week covers every weekday", func(t *testing.T) {
		week := availability.ClosedWeek()
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			day, ok := week.Day(wd)
			require.True(t, ok)
			assert.False(t, day.Enabled())
		}
	})
}

func TestCalendarDate(t *testing.T) {
	t.Run("parse round trip", func(t *testing.T) {
		date, err := availability.ParseCalendarDate("2025-06-16")
		require.NoError(t, err)
		assert.Equal(t, "2025-06-16", date.String())
		assert.Equal(t, time.Monday, date.Weekday())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, s := range []string{"", "16/06/2025", "2025-13-01", "2025-02-30"} {
			_, err := availability.ParseCalendarDate(s)
			assert.ErrorIs(t, err, availability.ErrInvalidDate, "input %q", s)
		}
	})

	t.Run("rejects invalid components", func(t *testing.T) {
		_, err := availability.NewCalendarDate(2025, time.February, 30)
		assert.ErrorIs(t, err, availability.ErrInvalidDate)
	})

	t.Run("day arithmetic crosses month boundaries", func(t *testing.T) {
		date := mustDate(2025, time.June, 30)
		assert.Equal(t, "2025-07-01", date.AddDays(1).String())
	})
}

func TestValidateBlackouts(t *testing.T) {
	first, err := availability.NewBlackoutDate(mustDate(2025, time.July, 4), "holiday", true)
	require.NoError(t, err)
	second, err := availability.NewBlackoutDate(mustDate(2025, time.December, 25), "holiday", true)
	require.NoError(t, err)

	assert.NoError(t, availability.ValidateBlackouts([]availability.BlackoutDate{first, second}))

	dup, err := availability.NewBlackoutDate(mustDate(2025, time.July, 4), "duplicate", false)
	require.NoError(t, err)
	assert.ErrorIs(t,
		availability.ValidateBlackouts([]availability.BlackoutDate{first, second, dup}),
		availability.ErrDuplicateBlackout,
	)
}
