package response

import (
	"time"

	"github.com/google/uuid"

	"ticketflo/internal/usecase/queries"
)

type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resourceId"`
	ResourceName string    `json:"resourceName"`
	UserID       uuid.UUID `json:"userId"`
	UserEmail    string    `json:"userEmail"`
	Date         string    `json:"date"`
	SlotStart    int       `json:"slotStart"`
	SlotEnd      int       `json:"slotEnd"`
	PartySize    int       `json:"partySize"`
	Status       string    `json:"status"`
	Note         *string   `json:"note,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type BookingListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resourceId"`
	ResourceName string    `json:"resourceName"`
	Date         string    `json:"date"`
	SlotStart    int       `json:"slotStart"`
	SlotEnd      int       `json:"slotEnd"`
	PartySize    int       `json:"partySize"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	Items      []*BookingListItemResponse `json:"items"`
	NextCursor *string                    `json:"nextCursor,omitempty"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:           rm.ID,
		ResourceID:   rm.ResourceID,
		ResourceName: rm.ResourceName,
		UserID:       rm.UserID,
		UserEmail:    rm.UserEmail,
		Date:         rm.Date,
		SlotStart:    rm.SlotStart,
		SlotEnd:      rm.SlotEnd,
		PartySize:    rm.PartySize,
		Status:       rm.Status,
		Note:         rm.Note,
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}

func FromBookingListItems(items []*queries.BookingListItem, next *queries.Cursor) *BookingListResponse {
	out := make([]*BookingListItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, &BookingListItemResponse{
			ID:           item.ID,
			ResourceID:   item.ResourceID,
			ResourceName: item.ResourceName,
			Date:         item.Date,
			SlotStart:    item.SlotStart,
			SlotEnd:      item.SlotEnd,
			PartySize:    item.PartySize,
			Status:       item.Status,
			CreatedAt:    item.CreatedAt,
		})
	}

	resp := &BookingListResponse{Items: out}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}
