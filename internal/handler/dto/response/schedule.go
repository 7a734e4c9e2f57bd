package response

import (
	"time"

	"github.com/google/uuid"

	"ticketflo/internal/usecase/queries"
)

type ResourceResponse struct {
	ID                     uuid.UUID `json:"id"`
	OrgID                  uuid.UUID `json:"orgId"`
	Name                   string    `json:"name"`
	Vertical               string    `json:"vertical"`
	SlotIntervalMinutes    int       `json:"slotIntervalMinutes"`
	DefaultDurationMinutes int       `json:"defaultDurationMinutes"`
	MaxCapacityPerSlot     int       `json:"maxCapacityPerSlot"`
	MinPartySize           int       `json:"minPartySize"`
	AllowJoinExisting      bool      `json:"allowJoinExisting"`
	Timezone               string    `json:"timezone"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

type TimeRangeResponse struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type DayScheduleResponse struct {
	Weekday    int                 `json:"weekday"`
	Enabled    bool                `json:"enabled"`
	TimeRanges []TimeRangeResponse `json:"timeRanges"`
}

type WeeklyScheduleResponse struct {
	ResourceID uuid.UUID             `json:"resourceId"`
	Days       []DayScheduleResponse `json:"days"`
}

type BlackoutResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Reason    *string   `json:"reason,omitempty"`
	Recurring bool      `json:"recurring"`
}

type CreateBlackoutResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromResourceView(rm *queries.ResourceView) *ResourceResponse {
	return &ResourceResponse{
		ID:                     rm.ID,
		OrgID:                  rm.OrgID,
		Name:                   rm.Name,
		Vertical:               rm.Vertical,
		SlotIntervalMinutes:    rm.SlotIntervalMinutes,
		DefaultDurationMinutes: rm.DefaultDurationMinutes,
		MaxCapacityPerSlot:     rm.MaxCapacityPerSlot,
		MinPartySize:           rm.MinPartySize,
		AllowJoinExisting:      rm.AllowJoinExisting,
		Timezone:               rm.Timezone,
		CreatedAt:              rm.CreatedAt,
		UpdatedAt:              rm.UpdatedAt,
	}
}

func FromResourceViews(rms []queries.ResourceView) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(rms))
	for i := range rms {
		out = append(out, *FromResourceView(&rms[i]))
	}
	return out
}

func FromWeeklyScheduleView(rm *queries.WeeklyScheduleView) *WeeklyScheduleResponse {
	days := make([]DayScheduleResponse, 0, len(rm.Days))
	for _, d := range rm.Days {
		ranges := make([]TimeRangeResponse, 0, len(d.TimeRanges))
		for _, tr := range d.TimeRanges {
			ranges = append(ranges, TimeRangeResponse{Start: tr.Start, End: tr.End})
		}
		days = append(days, DayScheduleResponse{
			Weekday:    d.Weekday,
			Enabled:    d.Enabled,
			TimeRanges: ranges,
		})
	}
	return &WeeklyScheduleResponse{ResourceID: rm.ResourceID, Days: days}
}

func FromBlackoutViews(views []queries.BlackoutView) []BlackoutResponse {
	out := make([]BlackoutResponse, 0, len(views))
	for _, v := range views {
		out = append(out, BlackoutResponse{
			ID:        v.ID,
			Date:      v.Date,
			Reason:    v.Reason,
			Recurring: v.Recurring,
		})
	}
	return out
}
