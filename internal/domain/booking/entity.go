package booking

import (
	"errors"
	"time"

	"ticketflo/internal/domain/availability"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrAlreadyCompleted = errors.New("booking is already completed")
	ErrPartyTooSmall    = errors.New("party size is below the resource minimum")
	ErrPartyTooLarge    = errors.New("party size exceeds remaining slot capacity")
	ErrSlotUnavailable  = errors.New("slot is not available for booking")
	ErrNoSuchSlot       = errors.New("no slot starts at the requested time")
)

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: value}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}

// Booking holds one confirmed party on one slot of one resource. Start and
// end are minutes from midnight on Date in the resource's timezone, matching
// the slot grid the availability engine produces.
type Booking struct {
	id         uuid.UUID
	resourceID uuid.UUID
	userID     uuid.UUID
	date       availability.CalendarDate
	slotStart  int
	slotEnd    int
	partySize  int
	status     Status
	note       Note
	createdAt  time.Time
	updatedAt  time.Time
}

func ReconstructBooking(
	id, resourceID, userID uuid.UUID,
	date availability.CalendarDate,
	slotStart, slotEnd, partySize int,
	status Status,
	note Note,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		resourceID: resourceID,
		userID:     userID,
		date:       date,
		slotStart:  slotStart,
		slotEnd:    slotEnd,
		partySize:  partySize,
		status:     status,
		note:       note,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

// Cancel releases the party's capacity. Completed bookings are history and
// cannot be cancelled.
func (b *Booking) Cancel() error {
	switch b.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrAlreadyCompleted
	}
	b.status = StatusCancelled
	return nil
}

// Complete marks the visit as having happened. Only confirmed bookings
// complete; a cancelled one never took place.
func (b *Booking) Complete() error {
	switch b.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrAlreadyCompleted
	}
	b.status = StatusCompleted
	return nil
}

// HasExpired reports whether the slot's end has passed in the given location.
func (b *Booking) HasExpired(now time.Time, loc *time.Location) bool {
	local := now.In(loc)
	dayEnd := b.date.In(loc).Add(time.Duration(b.slotEnd) * time.Minute)
	return local.After(dayEnd)
}

// Snapshot projects the booking into the form the availability engine counts
// capacity with.
func (b *Booking) Snapshot() availability.ExistingBooking {
	return availability.ExistingBooking{
		SlotStart: b.slotStart,
		SlotEnd:   b.slotEnd,
		PartySize: b.partySize,
		Status:    availability.BookingStatus(b.status),
	}
}

func (b *Booking) ID() uuid.UUID                   { return b.id }
func (b *Booking) ResourceID() uuid.UUID           { return b.resourceID }
func (b *Booking) UserID() uuid.UUID               { return b.userID }
func (b *Booking) Date() availability.CalendarDate { return b.date }
func (b *Booking) SlotStart() int                  { return b.slotStart }
func (b *Booking) SlotEnd() int                    { return b.slotEnd }
func (b *Booking) PartySize() int                  { return b.partySize }
func (b *Booking) Status() Status                  { return b.status }
func (b *Booking) Note() Note                      { return b.note }
func (b *Booking) CreatedAt() time.Time            { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time            { return b.updatedAt }
