package availability

import (
	"ticketflo/internal/pkg/clock"
)

// BookingStatus mirrors the booking store's status column. Only non-cancelled
// bookings count against slot capacity.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// ExistingBooking is a read-only snapshot row from the booking store.
// The caller pre-filters to the target resource and date; the engine never
// queries storage itself.
type ExistingBooking struct {
	SlotStart int
	SlotEnd   int
	PartySize int
	Status    BookingStatus
}

func (b ExistingBooking) countsAgainstCapacity() bool {
	return b.Status != BookingCancelled
}

// Slot is one bookable window, annotated with what is left of it. Computed
// fresh on every query and never cached here; stale-snapshot races are the
// booking-commit path's problem, not this engine's.
type Slot struct {
	Start             int
	End               int
	RemainingCapacity int
	Available         bool
}

// Engine computes the ordered bookable slots for one resource on one calendar
// date. It is a pure function of its inputs plus the injected clock, owns no
// state, and is safe to call concurrently.
type Engine struct {
	clock clock.Clock
}

func NewEngine(clk clock.Clock) *Engine {
	return &Engine{clock: clk}
}

// ComputeDay returns the slot list for date, in ascending start order.
//
// A well-formed day with no availability (blackout, disabled weekday, fully
// booked) yields an empty list; malformed configuration yields an error
// matching ErrConfig. Full slots are included with Available=false so callers
// can render them as sold out instead of hiding them.
func (e *Engine) ComputeDay(
	schedule WeeklySchedule,
	blackouts []BlackoutDate,
	rules Rules,
	bookings []ExistingBooking,
	date CalendarDate,
) ([]Slot, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	loc, err := rules.Location()
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}

	// Blackouts fail closed: zero availability, not an error.
	if IsBlackedOut(blackouts, date) {
		return nil, nil
	}

	day, ok := schedule.Day(date.Weekday())
	if !ok {
		return nil, ErrMissingWeekday
	}
	if !day.Enabled() {
		return nil, nil
	}

	now := e.clock.Now().In(loc)
	today := DateOf(now).Equal(date)
	nowMinute := now.Hour()*60 + now.Minute()

	var slots []Slot
	for _, r := range day.Ranges() {
		for start := r.Start(); start+rules.Duration() <= r.End(); start += rules.SlotInterval() {
			if today && start < nowMinute {
				continue
			}
			end := start + rules.Duration()

			booked := 0
			for _, b := range bookings {
				if b.countsAgainstCapacity() && b.SlotStart == start && b.SlotEnd == end {
					booked += b.PartySize
				}
			}

			remaining := rules.Capacity() - booked
			if remaining < 0 {
				remaining = 0
			}

			available := remaining > 0
			if !rules.AllowJoinExisting() {
				available = booked == 0
			}

			slots = append(slots, Slot{
				Start:             start,
				End:               end,
				RemainingCapacity: remaining,
				Available:         available,
			})
		}
	}
	return slots, nil
}

// FirstAvailable is a convenience for booking flows that want the earliest
// open slot of the day, if any.
func FirstAvailable(slots []Slot) (Slot, bool) {
	for _, s := range slots {
		if s.Available {
			return s, true
		}
	}
	return Slot{}, false
}

// SlotAt locates the computed slot with the given start minute.
func SlotAt(slots []Slot, start int) (Slot, bool) {
	for _, s := range slots {
		if s.Start == start {
			return s, true
		}
	}
	return Slot{}, false
}
