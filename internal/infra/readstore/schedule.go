package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"ticketflo/internal/domain/availability"
	"ticketflo/internal/infra"
)

type ScheduleReadStore struct {
	pool *pgxpool.Pool
}

func NewScheduleReadStore(pool *pgxpool.Pool) *ScheduleReadStore {
	return &ScheduleReadStore{pool: pool}
}

// WeekByResource loads all seven weekday rows. Weekdays without a stored row
// come back closed, so a partially seeded resource still yields a valid week.
func (r *ScheduleReadStore) WeekByResource(ctx context.Context, resourceID uuid.UUID) (availability.WeeklySchedule, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT weekday, enabled, time_ranges FROM weekly_schedules WHERE resource_id = $1 ORDER BY weekday`,
		resourceID)
	if err != nil {
		return availability.WeeklySchedule{}, infra.WrapRepoErr("failed to load weekly schedule", err)
	}
	defer rows.Close()

	days := make(map[time.Weekday]availability.DaySchedule, 7)
	for rows.Next() {
		var (
			weekday   int
			enabled   bool
			rangesRaw []byte
		)
		if err := rows.Scan(&weekday, &enabled, &rangesRaw); err != nil {
			return availability.WeeklySchedule{}, infra.WrapRepoErr("failed to scan schedule row", err)
		}

		day, err := infra.DecodeDaySchedule(enabled, rangesRaw)
		if err != nil {
			return availability.WeeklySchedule{}, infra.WrapRepoErr("stored schedule is invalid", err)
		}
		days[time.Weekday(weekday)] = day
	}
	if err := rows.Err(); err != nil {
		return availability.WeeklySchedule{}, infra.WrapRepoErr("failed to iterate schedule rows", err)
	}

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if _, ok := days[wd]; !ok {
			days[wd] = availability.ClosedDay()
		}
	}

	week, err := availability.NewWeeklySchedule(days)
	if err != nil {
		return availability.WeeklySchedule{}, infra.WrapRepoErr("stored schedule is invalid", err)
	}
	return week, nil
}

func (r *ScheduleReadStore) BlackoutsByResource(ctx context.Context, resourceID uuid.UUID) ([]availability.BlackoutDate, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, date, reason, recurring FROM blackout_dates WHERE resource_id = $1 ORDER BY date`,
		resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load blackout dates", err)
	}
	defer rows.Close()

	var blackouts []availability.BlackoutDate
	for rows.Next() {
		var (
			id        uuid.UUID
			date      time.Time
			reason    *string
			recurring bool
		)
		if err := rows.Scan(&id, &date, &reason, &recurring); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blackout row", err)
		}

		reasonStr := ""
		if reason != nil {
			reasonStr = *reason
		}
		blackouts = append(blackouts, availability.ReconstructBlackoutDate(id, availability.DateOf(date.UTC()), reasonStr, recurring))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blackout rows", err)
	}
	return blackouts, nil
}
