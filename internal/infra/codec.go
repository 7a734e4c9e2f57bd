package infra

import (
	"encoding/json"

	"ticketflo/internal/domain/availability"
)

// Day schedules persist their ranges as a jsonb array of [start, end] pairs.

func EncodeTimeRanges(ranges []availability.TimeRange) ([]byte, error) {
	pairs := make([][2]int, 0, len(ranges))
	for _, r := range ranges {
		pairs = append(pairs, [2]int{r.Start(), r.End()})
	}
	return json.Marshal(pairs)
}

func DecodeDaySchedule(enabled bool, rangesRaw []byte) (availability.DaySchedule, error) {
	var pairs [][2]int
	if len(rangesRaw) > 0 {
		if err := json.Unmarshal(rangesRaw, &pairs); err != nil {
			return availability.DaySchedule{}, err
		}
	}

	ranges := make([]availability.TimeRange, 0, len(pairs))
	for _, p := range pairs {
		tr, err := availability.NewTimeRange(p[0], p[1])
		if err != nil {
			return availability.DaySchedule{}, err
		}
		ranges = append(ranges, tr)
	}

	return availability.NewDaySchedule(enabled, ranges)
}
