package queries

import (
	"time"

	"github.com/google/uuid"
)

// ResourceView represents read-optimized resource data with its resolved
// booking policy.
type ResourceView struct {
	ID                     uuid.UUID `json:"id"`
	OrgID                  uuid.UUID `json:"org_id"`
	Name                   string    `json:"name"`
	Vertical               string    `json:"vertical"`
	SlotIntervalMinutes    int       `json:"slot_interval_minutes"`
	DefaultDurationMinutes int       `json:"default_duration_minutes"`
	MaxCapacityPerSlot     int       `json:"max_capacity_per_slot"`
	MinPartySize           int       `json:"min_party_size"`
	AllowJoinExisting      bool      `json:"allow_join_existing"`
	Timezone               string    `json:"timezone"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// SlotView is one bookable slot on a resource's day, minutes from midnight
// in the resource's timezone.
type SlotView struct {
	Start             int  `json:"start"`
	End               int  `json:"end"`
	RemainingCapacity int  `json:"remaining_capacity"`
	Available         bool `json:"available"`
}

// DaySlotsView is the computed availability for one resource and date.
type DaySlotsView struct {
	ResourceID uuid.UUID  `json:"resource_id"`
	Date       string     `json:"date"`
	Timezone   string     `json:"timezone"`
	Slots      []SlotView `json:"slots"`
}

// BookingView represents read-optimized booking data.
type BookingView struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	UserID       uuid.UUID `json:"user_id"`
	UserEmail    string    `json:"user_email"`
	Date         string    `json:"date"`
	SlotStart    int       `json:"slot_start"`
	SlotEnd      int       `json:"slot_end"`
	PartySize    int       `json:"party_size"`
	Status       string    `json:"status"`
	Note         *string   `json:"note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DayScheduleView is one weekday's opening hours.
type DayScheduleView struct {
	Weekday    int             `json:"weekday"`
	Enabled    bool            `json:"enabled"`
	TimeRanges []TimeRangeView `json:"time_ranges"`
}

type TimeRangeView struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// WeeklyScheduleView is a resource's full week, Sunday first.
type WeeklyScheduleView struct {
	ResourceID uuid.UUID         `json:"resource_id"`
	Days       []DayScheduleView `json:"days"`
}

// BlackoutView represents one closed date, exact or recurring yearly.
type BlackoutView struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Reason    *string   `json:"reason,omitempty"`
	Recurring bool      `json:"recurring"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID  `json:"id"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	OrgID    *uuid.UUID `json:"org_id,omitempty"`
	IsActive bool       `json:"is_active"`
}

// IdempotencyKeyView represents read-optimized idempotency key data
type IdempotencyKeyView struct {
	Key              uuid.UUID  `json:"key"`
	UserID           uuid.UUID  `json:"user_id"`
	Endpoint         string     `json:"endpoint"`
	RequestHash      string     `json:"request_hash"`
	ResponseBodyHash *string    `json:"response_body_hash,omitempty"`
	Status           string     `json:"status"`
	ResultBookingID  *uuid.UUID `json:"result_booking_id,omitempty"`
	ExpiresAt        time.Time  `json:"expires_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
