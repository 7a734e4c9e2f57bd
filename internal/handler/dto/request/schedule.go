package request

import (
	"time"

	"ticketflo/internal/domain/availability"
	"ticketflo/internal/domain/resource"
)

type TimeRangePayload struct {
	Start int `json:"start" binding:"min=0,max=1439"`
	End   int `json:"end" binding:"min=1,max=1440"`
}

type DaySchedulePayload struct {
	Weekday    int                `json:"weekday" binding:"min=0,max=6"`
	Enabled    bool               `json:"enabled"`
	TimeRanges []TimeRangePayload `json:"time_ranges"`
}

type UpdateWeeklyScheduleRequest struct {
	Days []DaySchedulePayload `json:"days" binding:"required,len=7,dive"`
}

func (r UpdateWeeklyScheduleRequest) ToDomain() (availability.WeeklySchedule, error) {
	days := make(map[time.Weekday]availability.DaySchedule, len(r.Days))
	for _, d := range r.Days {
		ranges := make([]availability.TimeRange, 0, len(d.TimeRanges))
		for _, tr := range d.TimeRanges {
			timeRange, err := availability.NewTimeRange(tr.Start, tr.End)
			if err != nil {
				return availability.WeeklySchedule{}, err
			}
			ranges = append(ranges, timeRange)
		}

		day, err := availability.NewDaySchedule(d.Enabled, ranges)
		if err != nil {
			return availability.WeeklySchedule{}, err
		}
		days[time.Weekday(d.Weekday)] = day
	}

	return availability.NewWeeklySchedule(days)
}

type UpdateRulesRequest struct {
	SlotIntervalMinutes    *int   `json:"slot_interval_minutes,omitempty"`
	DefaultDurationMinutes *int   `json:"default_duration_minutes,omitempty"`
	MaxCapacityPerSlot     *int   `json:"max_capacity_per_slot,omitempty"`
	MinPartySize           *int   `json:"min_party_size,omitempty"`
	AllowJoinExisting      *bool  `json:"allow_join_existing,omitempty"`
	Timezone               string `json:"timezone" binding:"required"`
}

func (r UpdateRulesRequest) ToOverrides() resource.RuleOverrides {
	return resource.RuleOverrides{
		SlotIntervalMinutes:    r.SlotIntervalMinutes,
		DefaultDurationMinutes: r.DefaultDurationMinutes,
		MaxCapacityPerSlot:     r.MaxCapacityPerSlot,
		MinPartySize:           r.MinPartySize,
		AllowJoinExisting:      r.AllowJoinExisting,
		Timezone:               r.Timezone,
	}
}

type CreateBlackoutRequest struct {
	Date      string `json:"date" binding:"required"`
	Reason    string `json:"reason,omitempty"`
	Recurring bool   `json:"recurring"`
}
