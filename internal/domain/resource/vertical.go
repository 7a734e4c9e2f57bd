package resource

import (
	"errors"

	"ticketflo/internal/domain/availability"
	"ticketflo/internal/pkg/patch"
)

var ErrUnknownVertical = errors.New("unknown vertical")

// Vertical selects the default booking policy for a class of venue. The
// presets carry what each vertical's operators configure in practice; a
// resource overrides individual fields, never the whole shape.
type Vertical string

const (
	VerticalGeneral       Vertical = "general"
	VerticalGolf          Vertical = "golf"
	VerticalSalon         Vertical = "salon"
	VerticalEntertainment Vertical = "entertainment"
)

func (v Vertical) String() string {
	return string(v)
}

func (v Vertical) IsValid() bool {
	switch v {
	case VerticalGeneral, VerticalGolf, VerticalSalon, VerticalEntertainment:
		return true
	default:
		return false
	}
}

func NewVertical(s string) (Vertical, error) {
	v := Vertical(s)
	if !v.IsValid() {
		return "", ErrUnknownVertical
	}
	return v, nil
}

// RuleOverrides layers per-resource settings over the vertical preset.
// Nil fields keep the preset value. Timezone has no preset and is always
// required from the resource configuration.
type RuleOverrides struct {
	SlotIntervalMinutes    *int
	DefaultDurationMinutes *int
	MaxCapacityPerSlot     *int
	MinPartySize           *int
	AllowJoinExisting      *bool
	Timezone               string
}

type preset struct {
	slotIntervalMinutes    int
	defaultDurationMinutes int
	maxCapacityPerSlot     int
	minPartySize           int
	allowJoinExisting      bool
}

var presets = map[Vertical]preset{
	// Hour-long blocks, generous capacity, strangers may share.
	VerticalGeneral: {
		slotIntervalMinutes:    60,
		defaultDurationMinutes: 60,
		maxCapacityPerSlot:     10,
		minPartySize:           1,
		allowJoinExisting:      true,
	},
	// Tee times every 10 minutes, foursomes, joining an existing group is
	// the norm on a tee sheet.
	VerticalGolf: {
		slotIntervalMinutes:    10,
		defaultDurationMinutes: 10,
		maxCapacityPerSlot:     4,
		minPartySize:           1,
		allowJoinExisting:      true,
	},
	// One chair, one client; a started appointment closes the slot.
	VerticalSalon: {
		slotIntervalMinutes:    30,
		defaultDurationMinutes: 45,
		maxCapacityPerSlot:     1,
		minPartySize:           1,
		allowJoinExisting:      false,
	},
	// Lanes and party rooms: staggered starts longer than the gap between
	// them, a booked lane is private to its party.
	VerticalEntertainment: {
		slotIntervalMinutes:    30,
		defaultDurationMinutes: 90,
		maxCapacityPerSlot:     8,
		minPartySize:           2,
		allowJoinExisting:      false,
	},
}

// ResolveRules folds overrides onto the vertical preset and validates the
// result once, so the availability engine receives an already-normalized
// policy.
func (v Vertical) ResolveRules(overrides RuleOverrides) (availability.Rules, error) {
	p, ok := presets[v]
	if !ok {
		return availability.Rules{}, ErrUnknownVertical
	}

	return availability.NewRules(
		patch.Coalesce(overrides.SlotIntervalMinutes, p.slotIntervalMinutes),
		patch.Coalesce(overrides.DefaultDurationMinutes, p.defaultDurationMinutes),
		patch.Coalesce(overrides.MaxCapacityPerSlot, p.maxCapacityPerSlot),
		patch.Coalesce(overrides.MinPartySize, p.minPartySize),
		patch.Coalesce(overrides.AllowJoinExisting, p.allowJoinExisting),
		overrides.Timezone,
	)
}
