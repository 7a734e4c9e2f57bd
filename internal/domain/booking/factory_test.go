//go:build unit

package booking_test

import (
	"testing"
	"time"

	"ticketflo/internal/domain/availability"
	"ticketflo/internal/domain/booking"
	"ticketflo/internal/domain/resource"
	"ticketflo/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testZone = "America/New_York"

// bookingDate is a Monday well after the mock clock's "now".
var bookingDate = mustDate(2025, time.June, 16)

func intPtr(v int) *int { return &v }

func testFactory(t *testing.T) *booking.Factory {
	t.Helper()
	loc, err := time.LoadLocation(testZone)
	require.NoError(t, err)
	clk := clock.NewMockClock(time.Date(2025, time.January, 2, 8, 0, 0, 0, loc))
	return booking.NewFactory(clk, availability.NewEngine(clk))
}

// golfResource opens Mondays 09:00-10:00 with hour slots, capacity 4,
// minimum party of 2, joinable.
func golfResource(t *testing.T) (*resource.Resource, availability.WeeklySchedule) {
	t.Helper()
	res, err := resource.NewResource(uuid.New(), "North Course", resource.VerticalGolf, resource.RuleOverrides{
		SlotIntervalMinutes:    intPtr(60),
		DefaultDurationMinutes: intPtr(60),
		MinPartySize:           intPtr(2),
		Timezone:               testZone,
	})
	require.NoError(t, err)

	days := make(map[time.Weekday]availability.DaySchedule, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		days[d] = availability.ClosedDay()
	}
	r, err := availability.NewTimeRange(540, 660)
	require.NoError(t, err)
	day, err := availability.NewDaySchedule(true, []availability.TimeRange{r})
	require.NoError(t, err)
	days[time.Monday] = day
	week, err := availability.NewWeeklySchedule(days)
	require.NoError(t, err)

	return res, week
}

func TestFactory_CreateBooking(t *testing.T) {
	f := testFactory(t)
	userID := uuid.New()

	t.Run("Succeeds", func(t *testing.T) {
		res, week := golfResource(t)

		b, err := f.CreateBooking(res, week, nil, nil, userID, bookingDate, 540, 2, booking.NewNote(""))
		require.NoError(t, err)

		assert.Equal(t, res.ID(), b.ResourceID())
		assert.Equal(t, userID, b.UserID())
		assert.Equal(t, 540, b.SlotStart())
		assert.Equal(t, 600, b.SlotEnd())
		assert.Equal(t, 2, b.PartySize())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.False(t, b.CreatedAt().IsZero())
	})

	t.Run("PartyBelowMinimum", func(t *testing.T) {
		res, week := golfResource(t)

		_, err := f.CreateBooking(res, week, nil, nil, userID, bookingDate, 540, 1, booking.NewNote(""))
		assert.ErrorIs(t, err, booking.ErrPartyTooSmall)
	})

	t.Run("NoSlotAtRequestedStart", func(t *testing.T) {
		res, week := golfResource(t)

		_, err := f.CreateBooking(res, week, nil, nil, userID, bookingDate, 545, 2, booking.NewNote(""))
		assert.ErrorIs(t, err, booking.ErrNoSuchSlot)
	})

	t.Run("PartyExceedsRemainingCapacity", func(t *testing.T) {
		res, week := golfResource(t)
		existing := []availability.ExistingBooking{
			{SlotStart: 540, SlotEnd: 600, PartySize: 2, Status: availability.BookingConfirmed},
		}

		_, err := f.CreateBooking(res, week, nil, existing, userID, bookingDate, 540, 3, booking.NewNote(""))
		assert.ErrorIs(t, err, booking.ErrPartyTooLarge)
	})

	t.Run("CancelledBookingFreesCapacity", func(t *testing.T) {
		res, week := golfResource(t)
		existing := []availability.ExistingBooking{
			{SlotStart: 540, SlotEnd: 600, PartySize: 4, Status: availability.BookingCancelled},
		}

		b, err := f.CreateBooking(res, week, nil, existing, userID, bookingDate, 540, 4, booking.NewNote(""))
		require.NoError(t, err)
		assert.Equal(t, 4, b.PartySize())
	})

	t.Run("FullSlotUnavailable", func(t *testing.T) {
		res, week := golfResource(t)
		existing := []availability.ExistingBooking{
			{SlotStart: 540, SlotEnd: 600, PartySize: 4, Status: availability.BookingConfirmed},
		}

		_, err := f.CreateBooking(res, week, nil, existing, userID, bookingDate, 540, 2, booking.NewNote(""))
		assert.ErrorIs(t, err, booking.ErrSlotUnavailable)
	})

	t.Run("BlackoutDayHasNoSlots", func(t *testing.T) {
		res, week := golfResource(t)
		blackout, err := availability.NewBlackoutDate(bookingDate, "course maintenance", false)
		require.NoError(t, err)

		_, err = f.CreateBooking(res, week, []availability.BlackoutDate{blackout}, nil, userID, bookingDate, 540, 2, booking.NewNote(""))
		assert.ErrorIs(t, err, booking.ErrNoSuchSlot)
	})
}
