package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ticketflo/internal/domain/availability"
	"ticketflo/internal/infra"
)

type ScheduleRepository struct{}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{}
}

func (r *ScheduleRepository) WeekByResource(ctx context.Context, tx infra.DBTX, resourceID uuid.UUID) (availability.WeeklySchedule, error) {
	rows, err := tx.Query(ctx, `
		SELECT weekday, enabled, time_ranges
		FROM weekly_schedules
		WHERE resource_id = $1`, resourceID)
	if err != nil {
		return availability.ClosedWeek(), infra.WrapRepoErr("failed to load weekly schedule", err)
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
			return availability.ClosedWeek(), infra.WrapRepoErr("failed to scan schedule row", err)
		}
		day, err := infra.DecodeDaySchedule(enabled, rangesRaw)
		if err != nil {
			return availability.ClosedWeek(), infra.WrapRepoErr("corrupt schedule row", err)
		}
		days[time.Weekday(weekday)] = day
	}
	if err := rows.Err(); err != nil {
		return availability.ClosedWeek(), infra.WrapRepoErr("failed to iterate schedule rows", err)
	}

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if _, ok := days[wd]; !ok {
			days[wd] = availability.ClosedDay()
		}
	}

	week, err := availability.NewWeeklySchedule(days)
	if err != nil {
		return availability.ClosedWeek(), infra.WrapRepoErr("invalid stored schedule", err)
	}
	return week, nil
}

func (r *ScheduleRepository) BlackoutsByResource(ctx context.Context, tx infra.DBTX, resourceID uuid.UUID) ([]availability.BlackoutDate, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, date, reason, recurring
		FROM blackout_dates
		WHERE resource_id = $1
		ORDER BY date`, resourceID)
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
		var reasonValue string
		if reason != nil {
			reasonValue = *reason
		}
		blackouts = append(blackouts, availability.ReconstructBlackoutDate(
			id, availability.DateOf(date.UTC()), reasonValue, recurring))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blackout rows", err)
	}
	return blackouts, nil
}

// ReplaceWeek swaps the full seven-day schedule in one shot. Callers hold the
// resource row lock, so delete-then-insert cannot interleave with a reader
// running in another transaction at read committed.
func (r *ScheduleRepository) ReplaceWeek(ctx context.Context, tx infra.DBTX, resourceID uuid.UUID, week availability.WeeklySchedule) error {
	if _, err := tx.Exec(ctx,
		`DELETE FROM weekly_schedules WHERE resource_id = $1`, resourceID); err != nil {
		return infra.WrapRepoErr("failed to clear weekly schedule", err)
	}

	for weekday := 0; weekday < 7; weekday++ {
		day, _ := week.Day(time.Weekday(weekday))
		rangesRaw, err := infra.EncodeTimeRanges(day.Ranges())
		if err != nil {
			return infra.WrapRepoErr("failed to encode time ranges", err)
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO weekly_schedules (resource_id, weekday, enabled, time_ranges)
			VALUES ($1, $2, $3, $4)`,
			resourceID, weekday, day.Enabled(), rangesRaw); err != nil {
			return infra.WrapRepoErr("failed to insert schedule row", err)
		}
	}
	return nil
}

func (r *ScheduleRepository) InsertBlackout(ctx context.Context, tx infra.DBTX, resourceID uuid.UUID, b availability.BlackoutDate) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO blackout_dates (id, resource_id, date, reason, recurring)
		VALUES ($1, $2, $3, $4, $5)`,
		b.ID(), resourceID, b.Date().String(), b.Reason(), b.Recurring())
	if err != nil {
		return infra.WrapRepoErr("failed to insert blackout date", err)
	}
	return nil
}

func (r *ScheduleRepository) DeleteBlackout(ctx context.Context, tx infra.DBTX, resourceID, blackoutID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx,
		`DELETE FROM blackout_dates WHERE resource_id = $1 AND id = $2`,
		resourceID, blackoutID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete blackout date", err)
	}
	return tag.RowsAffected(), nil
}
