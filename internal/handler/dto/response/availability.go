package response

import (
	"github.com/google/uuid"

	"ticketflo/internal/usecase/queries"
)

type SlotResponse struct {
	Start             int  `json:"start"`
	End               int  `json:"end"`
	RemainingCapacity int  `json:"remainingCapacity"`
	Available         bool `json:"available"`
}

type DaySlotsResponse struct {
	ResourceID uuid.UUID      `json:"resourceId"`
	Date       string         `json:"date"`
	Timezone   string         `json:"timezone"`
	Slots      []SlotResponse `json:"slots"`
}

func FromDaySlotsView(rm *queries.DaySlotsView) *DaySlotsResponse {
	slots := make([]SlotResponse, 0, len(rm.Slots))
	for _, s := range rm.Slots {
		slots = append(slots, SlotResponse{
			Start:             s.Start,
			End:               s.End,
			RemainingCapacity: s.RemainingCapacity,
			Available:         s.Available,
		})
	}
	return &DaySlotsResponse{
		ResourceID: rm.ResourceID,
		Date:       rm.Date,
		Timezone:   rm.Timezone,
		Slots:      slots,
	}
}
