package commands

import (
	"time"

	"github.com/google/uuid"

	"ticketflo/internal/domain/availability"
	"ticketflo/internal/domain/booking"
	"ticketflo/internal/domain/resource"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ResourceSnapshot struct {
	ID                     uuid.UUID
	OrgID                  uuid.UUID
	Name                   string
	Vertical               string
	SlotIntervalMinutes    int
	DefaultDurationMinutes int
	MaxCapacityPerSlot     int
	MinPartySize           int
	AllowJoinExisting      bool
	Timezone               string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// ToEntity rebuilds the domain resource, validating the stored policy on the
// way out so a bad row surfaces as a config error instead of bad slots.
func (s *ResourceSnapshot) ToEntity() (*resource.Resource, error) {
	vertical, err := resource.NewVertical(s.Vertical)
	if err != nil {
		return nil, err
	}

	rules, err := availability.NewRules(
		s.SlotIntervalMinutes,
		s.DefaultDurationMinutes,
		s.MaxCapacityPerSlot,
		s.MinPartySize,
		s.AllowJoinExisting,
		s.Timezone,
	)
	if err != nil {
		return nil, err
	}

	return resource.ReconstructResource(s.ID, s.OrgID, s.Name, vertical, rules, s.CreatedAt, s.UpdatedAt), nil
}

type BookingSnapshot struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	UserID     uuid.UUID
	Date       availability.CalendarDate
	SlotStart  int
	SlotEnd    int
	PartySize  int
	Status     string
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (s *BookingSnapshot) ToEntity() *booking.Booking {
	return booking.ReconstructBooking(
		s.ID, s.ResourceID, s.UserID,
		s.Date,
		s.SlotStart, s.SlotEnd, s.PartySize,
		booking.Status(s.Status),
		booking.NewNote(s.Note),
		s.CreatedAt, s.UpdatedAt,
	)
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}
