package availability

import (
	"time"
)

const dateLayout = "2006-01-02"

// CalendarDate is a timezone-naive calendar day. All timezone interpretation
// happens against Rules.Timezone at computation time, never here.
type CalendarDate struct {
	year  int
	month time.Month
	day   int
}

func NewCalendarDate(year int, month time.Month, day int) (CalendarDate, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return CalendarDate{}, ErrInvalidDate
	}
	return CalendarDate{year: year, month: month, day: day}, nil
}

func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return CalendarDate{}, ErrInvalidDate
	}
	return CalendarDate{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

// DateOf projects an instant onto the calendar day it falls on, in the
// instant's own location.
func DateOf(t time.Time) CalendarDate {
	return CalendarDate{year: t.Year(), month: t.Month(), day: t.Day()}
}

func (d CalendarDate) Year() int         { return d.year }
func (d CalendarDate) Month() time.Month { return d.month }
func (d CalendarDate) Day() int          { return d.day }

func (d CalendarDate) Weekday() time.Weekday {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d CalendarDate) Equal(other CalendarDate) bool {
	return d == other
}

// SameMonthDay ignores the year; used for recurring blackout matching.
func (d CalendarDate) SameMonthDay(other CalendarDate) bool {
	return d.month == other.month && d.day == other.day
}

// In anchors midnight of the calendar day in the given location.
func (d CalendarDate) In(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

func (d CalendarDate) AddDays(n int) CalendarDate {
	t := time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	return CalendarDate{year: t.Year(), month: t.Month(), day: t.Day()}
}

func (d CalendarDate) String() string {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).Format(dateLayout)
}

func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}
