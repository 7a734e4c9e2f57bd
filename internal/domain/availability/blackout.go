package availability

import (
	"github.com/google/uuid"
)

// BlackoutDate closes a resource for one calendar day. Recurring entries
// re-apply on the same month and day every year: a Feb 29 recurring blackout
// fires only in leap years, and never bleeds into Feb 28 or Mar 1.
type BlackoutDate struct {
	id        uuid.UUID
	date      CalendarDate
	reason    string
	recurring bool
}

func NewBlackoutDate(date CalendarDate, reason string, recurring bool) (BlackoutDate, error) {
	if date.IsZero() {
		return BlackoutDate{}, ErrInvalidDate
	}
	return BlackoutDate{
		id:        uuid.New(),
		date:      date,
		reason:    reason,
		recurring: recurring,
	}, nil
}

func ReconstructBlackoutDate(id uuid.UUID, date CalendarDate, reason string, recurring bool) BlackoutDate {
	return BlackoutDate{id: id, date: date, reason: reason, recurring: recurring}
}

func (b BlackoutDate) ID() uuid.UUID      { return b.id }
func (b BlackoutDate) Date() CalendarDate { return b.date }
func (b BlackoutDate) Reason() string     { return b.reason }
func (b BlackoutDate) Recurring() bool    { return b.recurring }

// Matches reports whether this blackout closes the given date.
func (b BlackoutDate) Matches(date CalendarDate) bool {
	if b.date.Equal(date) {
		return true
	}
	return b.recurring && b.date.SameMonthDay(date)
}

// ValidateBlackouts rejects duplicate dates within one resource's blackout
// set; the set is otherwise caller-ordered.
func ValidateBlackouts(blackouts []BlackoutDate) error {
	seen := make(map[CalendarDate]struct{}, len(blackouts))
	for _, b := range blackouts {
		if _, dup := seen[b.date]; dup {
			return ErrDuplicateBlackout
		}
		seen[b.date] = struct{}{}
	}
	return nil
}

// IsBlackedOut reports whether any entry closes the date.
func IsBlackedOut(blackouts []BlackoutDate, date CalendarDate) bool {
	for _, b := range blackouts {
		if b.Matches(date) {
			return true
		}
	}
	return false
}
