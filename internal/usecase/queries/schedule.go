package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ticketflo/internal/domain/availability"
	"ticketflo/internal/infra"
)

type ScheduleQueries interface {
	GetWeek(ctx context.Context, resourceID uuid.UUID) (*WeeklyScheduleView, error)
	ListBlackouts(ctx context.Context, resourceID uuid.UUID) ([]BlackoutView, error)
	GetResource(ctx context.Context, resourceID uuid.UUID) (*ResourceView, error)
	ListResources(ctx context.Context, orgID uuid.UUID) ([]ResourceView, error)
}

type scheduleQueriesImpl struct {
	resourceReads ResourceReadStore
	scheduleReads ScheduleReadStore
}

func NewScheduleQueries(resourceReads ResourceReadStore, scheduleReads ScheduleReadStore) ScheduleQueries {
	return &scheduleQueriesImpl{
		resourceReads: resourceReads,
		scheduleReads: scheduleReads,
	}
}

func (q *scheduleQueriesImpl) GetWeek(ctx context.Context, resourceID uuid.UUID) (*WeeklyScheduleView, error) {
	if _, err := q.GetResource(ctx, resourceID); err != nil {
		return nil, err
	}

	week, err := q.scheduleReads.WeekByResource(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	return toWeeklyScheduleView(resourceID, week), nil
}

func (q *scheduleQueriesImpl) ListBlackouts(ctx context.Context, resourceID uuid.UUID) ([]BlackoutView, error) {
	if _, err := q.GetResource(ctx, resourceID); err != nil {
		return nil, err
	}

	blackouts, err := q.scheduleReads.BlackoutsByResource(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	views := make([]BlackoutView, 0, len(blackouts))
	for _, b := range blackouts {
		var reason *string
		if r := b.Reason(); r != "" {
			reason = &r
		}
		views = append(views, BlackoutView{
			ID:        b.ID(),
			Date:      b.Date().String(),
			Reason:    reason,
			Recurring: b.Recurring(),
		})
	}
	return views, nil
}

func (q *scheduleQueriesImpl) GetResource(ctx context.Context, resourceID uuid.UUID) (*ResourceView, error) {
	view, err := q.resourceReads.FindByID(ctx, resourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *scheduleQueriesImpl) ListResources(ctx context.Context, orgID uuid.UUID) ([]ResourceView, error) {
	return q.resourceReads.List(ctx, orgID)
}

// toWeeklyScheduleView renders the week Sunday first, matching time.Weekday
// numbering.
func toWeeklyScheduleView(resourceID uuid.UUID, week availability.WeeklySchedule) *WeeklyScheduleView {
	days := make([]DayScheduleView, 0, 7)
	for wd := 0; wd < 7; wd++ {
		day, _ := week.Day(time.Weekday(wd))
		ranges := make([]TimeRangeView, 0, len(day.Ranges()))
		for _, r := range day.Ranges() {
			ranges = append(ranges, TimeRangeView{Start: r.Start(), End: r.End()})
		}
		days = append(days, DayScheduleView{
			Weekday:    wd,
			Enabled:    day.Enabled(),
			TimeRanges: ranges,
		})
	}
	return &WeeklyScheduleView{ResourceID: resourceID, Days: days}
}
