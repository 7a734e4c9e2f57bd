package availability

import (
	"time"
)

// MinutesPerDay bounds every TimeRange. Times are minute-of-day integers,
// not "HH:MM" strings, so range comparisons are plain integer comparisons.
const MinutesPerDay = 24 * 60

// TimeRange is a half-open [start, end) window within a single day, in
// minutes since midnight.
type TimeRange struct {
	start int
	end   int
}

func NewTimeRange(start, end int) (TimeRange, error) {
	if start < 0 || end > MinutesPerDay || start >= end {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{start: start, end: end}, nil
}

func (r TimeRange) Start() int   { return r.start }
func (r TimeRange) End() int     { return r.end }
func (r TimeRange) Minutes() int { return r.end - r.start }

func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.start < other.end && other.start < r.end
}

// DaySchedule is the operating-hours template for one weekday. A disabled day
// carries no ranges; an enabled day carries at least one. Ranges keep the
// order they were configured in and are never re-sorted downstream.
type DaySchedule struct {
	enabled bool
	ranges  []TimeRange
}

func NewDaySchedule(enabled bool, ranges []TimeRange) (DaySchedule, error) {
	if !enabled {
		if len(ranges) != 0 {
			return DaySchedule{}, ErrClosedDayRanges
		}
		return DaySchedule{}, nil
	}
	if len(ranges) == 0 {
		return DaySchedule{}, ErrOpenDayEmpty
	}
	for i := range ranges {
		for j := i + 1; j < len(ranges); j++ {
			if ranges[i].Overlaps(ranges[j]) {
				return DaySchedule{}, ErrOverlappingRanges
			}
		}
	}
	out := make([]TimeRange, len(ranges))
	copy(out, ranges)
	return DaySchedule{enabled: true, ranges: out}, nil
}

func ClosedDay() DaySchedule {
	return DaySchedule{}
}

func (d DaySchedule) Enabled() bool { return d.enabled }

func (d DaySchedule) Ranges() []TimeRange {
	out := make([]TimeRange, len(d.ranges))
	copy(out, d.ranges)
	return out
}

// WeeklySchedule maps every weekday to its DaySchedule. The constructor
// enforces the always-seven-entries invariant, so a lookup miss downstream is
// a data bug, not a legal state.
type WeeklySchedule struct {
	days map[time.Weekday]DaySchedule
}

func NewWeeklySchedule(days map[time.Weekday]DaySchedule) (WeeklySchedule, error) {
	if len(days) != 7 {
		return WeeklySchedule{}, ErrIncompleteWeek
	}
	out := make(map[time.Weekday]DaySchedule, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		day, ok := days[wd]
		if !ok {
			return WeeklySchedule{}, ErrIncompleteWeek
		}
		out[wd] = day
	}
	return WeeklySchedule{days: out}, nil
}

// ClosedWeek is the template for a freshly created resource: present for all
// seven weekdays, bookable on none.
func ClosedWeek() WeeklySchedule {
	days := make(map[time.Weekday]DaySchedule, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		days[wd] = ClosedDay()
	}
	return WeeklySchedule{days: days}
}

func (w WeeklySchedule) Day(wd time.Weekday) (DaySchedule, bool) {
	day, ok := w.days[wd]
	return day, ok
}

func (w WeeklySchedule) IsZero() bool {
	return w.days == nil
}
