package booking

import (
	"ticketflo/internal/domain/availability"
	"ticketflo/internal/domain/resource"
	"ticketflo/internal/pkg/clock"

	"github.com/google/uuid"
)

// Factory builds bookings against the slot grid the availability engine
// computes from a fresh snapshot. Callers run it inside the same transaction
// that loaded the snapshot, so the capacity check here is the authoritative
// one.
type Factory struct {
	Clock  clock.Clock
	Engine *availability.Engine
}

func NewFactory(clk clock.Clock, engine *availability.Engine) *Factory {
	return &Factory{
		Clock:  clk,
		Engine: engine,
	}
}

// CreateBooking places a party on the slot starting at slotStart on date.
// Schedule, blackouts and existing bookings must be the current snapshot for
// the resource; cancelled bookings are ignored by the engine.
func (f *Factory) CreateBooking(
	res *resource.Resource,
	schedule availability.WeeklySchedule,
	blackouts []availability.BlackoutDate,
	existing []availability.ExistingBooking,
	userID uuid.UUID,
	date availability.CalendarDate,
	slotStart int,
	partySize int,
	note Note,
) (*Booking, error) {
	rules := res.Rules()
	if partySize < rules.MinPartySize() {
		return nil, ErrPartyTooSmall
	}

	slots, err := f.Engine.ComputeDay(schedule, blackouts, rules, existing, date)
	if err != nil {
		return nil, err
	}

	slot, ok := availability.SlotAt(slots, slotStart)
	if !ok {
		return nil, ErrNoSuchSlot
	}
	if !slot.Available {
		return nil, ErrSlotUnavailable
	}
	if partySize > slot.RemainingCapacity {
		return nil, ErrPartyTooLarge
	}

	now := f.Clock.Now()
	return &Booking{
		id:         uuid.New(),
		resourceID: res.ID(),
		userID:     userID,
		date:       date,
		slotStart:  slot.Start,
		slotEnd:    slot.End,
		partySize:  partySize,
		status:     StatusConfirmed,
		note:       note,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}
