package request

import (
	"strings"

	"github.com/google/uuid"

	"ticketflo/internal/domain/availability"
	"ticketflo/internal/domain/booking"
)

type CreateBookingRequest struct {
	ResourceID uuid.UUID `json:"resource_id" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	SlotStart  int       `json:"slot_start" binding:"min=0,max=1439"`
	PartySize  int       `json:"party_size" binding:"required,min=1"`
	Note       *string   `json:"note,omitempty"`
}

// CreateBookingData is the request after date parsing and note trimming.
type CreateBookingData struct {
	Date availability.CalendarDate
	Note booking.Note
}

func (r CreateBookingRequest) ToDomain() (*CreateBookingData, error) {
	date, err := availability.ParseCalendarDate(r.Date)
	if err != nil {
		return nil, err
	}

	note := booking.NewNote("")
	if r.Note != nil {
		note = booking.NewNote(strings.TrimSpace(*r.Note))
	}

	return &CreateBookingData{
		Date: date,
		Note: note,
	}, nil
}
