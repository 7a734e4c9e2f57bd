package availability

import (
	"time"
)

// Rules is the normalized per-resource booking policy. Vertical-specific
// presets (golf tee sheets, salon services, entertainment lanes) are resolved
// into this one shape before the engine ever sees them.
type Rules struct {
	slotInterval      int
	duration          int
	capacity          int
	minPartySize      int
	allowJoinExisting bool
	timezone          string
}

func NewRules(slotIntervalMinutes, defaultDurationMinutes, maxCapacityPerSlot, minPartySize int, allowJoinExisting bool, timezone string) (Rules, error) {
	r := Rules{
		slotInterval:      slotIntervalMinutes,
		duration:          defaultDurationMinutes,
		capacity:          maxCapacityPerSlot,
		minPartySize:      minPartySize,
		allowJoinExisting: allowJoinExisting,
		timezone:          timezone,
	}
	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

// Validate re-checks the invariants so a zero-value Rules smuggled past the
// constructor still fails closed inside the engine.
func (r Rules) Validate() error {
	if r.slotInterval <= 0 {
		return ErrBadSlotInterval
	}
	if r.duration <= 0 {
		return ErrBadDuration
	}
	if r.capacity < 1 {
		return ErrBadCapacity
	}
	if r.minPartySize < 1 {
		return ErrBadMinPartySize
	}
	if r.timezone == "" {
		return ErrMissingTimezone
	}
	if _, err := time.LoadLocation(r.timezone); err != nil {
		return ErrBadTimezone
	}
	return nil
}

// Location resolves the venue timezone. Wall-clock slot boundaries are local
// to the venue; there is deliberately no UTC fallback.
func (r Rules) Location() (*time.Location, error) {
	if r.timezone == "" {
		return nil, ErrMissingTimezone
	}
	loc, err := time.LoadLocation(r.timezone)
	if err != nil {
		return nil, ErrBadTimezone
	}
	return loc, nil
}

func (r Rules) SlotInterval() int       { return r.slotInterval }
func (r Rules) Duration() int           { return r.duration }
func (r Rules) Capacity() int           { return r.capacity }
func (r Rules) MinPartySize() int       { return r.minPartySize }
func (r Rules) AllowJoinExisting() bool { return r.allowJoinExisting }
func (r Rules) Timezone() string        { return r.timezone }
