package queries

import (
	"context"

	"github.com/google/uuid"

	"ticketflo/internal/domain/availability"
	"ticketflo/internal/infra"
	"ticketflo/internal/pkg/errs"
)

var (
	ErrResourceNotFound = errs.New("resource not found")
)

type ResourceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	List(ctx context.Context, orgID uuid.UUID) ([]ResourceView, error)
}

type ScheduleReadStore interface {
	WeekByResource(ctx context.Context, resourceID uuid.UUID) (availability.WeeklySchedule, error)
	BlackoutsByResource(ctx context.Context, resourceID uuid.UUID) ([]availability.BlackoutDate, error)
}

type AvailabilityQueries interface {
	DaySlots(ctx context.Context, resourceID uuid.UUID, date availability.CalendarDate) (*DaySlotsView, error)
}

type availabilityQueriesImpl struct {
	resourceReads ResourceReadStore
	scheduleReads ScheduleReadStore
	bookingReads  BookingReadStore
	engine        *availability.Engine
}

func NewAvailabilityQueries(
	resourceReads ResourceReadStore,
	scheduleReads ScheduleReadStore,
	bookingReads BookingReadStore,
	engine *availability.Engine,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		resourceReads: resourceReads,
		scheduleReads: scheduleReads,
		bookingReads:  bookingReads,
		engine:        engine,
	}
}

// DaySlots loads the resource's policy, week, blackouts and the day's
// bookings, then computes the slot grid. A blacked-out or closed day comes
// back with an empty slot list, not an error.
func (q *availabilityQueriesImpl) DaySlots(ctx context.Context, resourceID uuid.UUID, date availability.CalendarDate) (*DaySlotsView, error) {
	res, err := q.resourceReads.FindByID(ctx, resourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	rules, err := availability.NewRules(
		res.SlotIntervalMinutes,
		res.DefaultDurationMinutes,
		res.MaxCapacityPerSlot,
		res.MinPartySize,
		res.AllowJoinExisting,
		res.Timezone,
	)
	if err != nil {
		return nil, err
	}

	week, err := q.scheduleReads.WeekByResource(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	blackouts, err := q.scheduleReads.BlackoutsByResource(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	snapshots, err := q.bookingReads.SnapshotsForDay(ctx, resourceID, date)
	if err != nil {
		return nil, err
	}

	slots, err := q.engine.ComputeDay(week, blackouts, rules, snapshots, date)
	if err != nil {
		return nil, err
	}

	views := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, SlotView{
			Start:             s.Start,
			End:               s.End,
			RemainingCapacity: s.RemainingCapacity,
			Available:         s.Available,
		})
	}

	return &DaySlotsView{
		ResourceID: resourceID,
		Date:       date.String(),
		Timezone:   res.Timezone,
		Slots:      views,
	}, nil
}
