package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"ticketflo/internal/domain/availability"
	"ticketflo/internal/domain/resource"
	reqdto "ticketflo/internal/handler/dto/request"
	"ticketflo/internal/infra"
	"ticketflo/internal/pkg/errs"
	"ticketflo/internal/usecase/shared"
)

var (
	ErrInvalidSchedule  = errs.New("invalid schedule")
	ErrInvalidRules     = errs.New("invalid booking rules")
	ErrInvalidBlackout  = errs.New("invalid blackout date")
	ErrBlackoutNotFound = errs.New("blackout date not found")
)

type ScheduleCommands interface {
	ReplaceWeek(ctx context.Context, resourceID uuid.UUID, req reqdto.UpdateWeeklyScheduleRequest) error
	UpdateRules(ctx context.Context, resourceID uuid.UUID, req reqdto.UpdateRulesRequest) error
	AddBlackout(ctx context.Context, resourceID uuid.UUID, req reqdto.CreateBlackoutRequest) (uuid.UUID, error)
	RemoveBlackout(ctx context.Context, resourceID, blackoutID uuid.UUID) error
}

type scheduleCommandsImpl struct {
	resourceRepo ResourceRepository
	scheduleRepo ScheduleRepository
	db           *pgxpool.Pool
}

func NewScheduleCommands(
	resourceRepo ResourceRepository,
	scheduleRepo ScheduleRepository,
	db *pgxpool.Pool,
) ScheduleCommands {
	return &scheduleCommandsImpl{
		resourceRepo: resourceRepo,
		scheduleRepo: scheduleRepo,
		db:           db,
	}
}

// ReplaceWeek swaps all seven day entries at once. Validation happens here,
// at write time, so reads never see a half-formed week.
func (c *scheduleCommandsImpl) ReplaceWeek(ctx context.Context, resourceID uuid.UUID, req reqdto.UpdateWeeklyScheduleRequest) error {
	week, err := req.ToDomain()
	if err != nil {
		return errs.Mark(err, ErrInvalidSchedule)
	}

	_, err = shared.WithDefaultRetry(ctx, c.db, func(tx infra.DBTX) (struct{}, error) {
		if _, err := c.resourceRepo.FindByIDForUpdate(ctx, tx, resourceID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, ErrResourceNotFound
			}
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := c.scheduleRepo.ReplaceWeek(ctx, tx, resourceID, week); err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

func (c *scheduleCommandsImpl) UpdateRules(ctx context.Context, resourceID uuid.UUID, req reqdto.UpdateRulesRequest) error {
	_, err := shared.WithDefaultRetry(ctx, c.db, func(tx infra.DBTX) (struct{}, error) {
		snapshot, err := c.resourceRepo.FindByIDForUpdate(ctx, tx, resourceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, ErrResourceNotFound
			}
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		resourceEntity, err := snapshot.ToEntity()
		if err != nil {
			return struct{}{}, errs.Mark(err, ErrInvalidRules)
		}

		if err := resourceEntity.UpdateRules(req.ToOverrides()); err != nil {
			return struct{}{}, errs.Mark(err, ErrInvalidRules)
		}

		updated := snapshotFromEntity(resourceEntity)
		if err := c.resourceRepo.UpdateRules(ctx, tx, resourceID, updated); err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

func (c *scheduleCommandsImpl) AddBlackout(ctx context.Context, resourceID uuid.UUID, req reqdto.CreateBlackoutRequest) (uuid.UUID, error) {
	date, err := availability.ParseCalendarDate(req.Date)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidBlackout)
	}

	blackout, err := availability.NewBlackoutDate(date, req.Reason, req.Recurring)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidBlackout)
	}

	_, err = shared.WithDefaultRetry(ctx, c.db, func(tx infra.DBTX) (struct{}, error) {
		if _, err := c.resourceRepo.FindByIDForUpdate(ctx, tx, resourceID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, ErrResourceNotFound
			}
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		existing, err := c.scheduleRepo.BlackoutsByResource(ctx, tx, resourceID)
		if err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := availability.ValidateBlackouts(append(existing, blackout)); err != nil {
			return struct{}{}, errs.Mark(err, ErrInvalidBlackout)
		}

		if err := c.scheduleRepo.InsertBlackout(ctx, tx, resourceID, blackout); err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return blackout.ID(), nil
}

func (c *scheduleCommandsImpl) RemoveBlackout(ctx context.Context, resourceID, blackoutID uuid.UUID) error {
	_, err := shared.WithDefaultRetry(ctx, c.db, func(tx infra.DBTX) (struct{}, error) {
		affected, err := c.scheduleRepo.DeleteBlackout(ctx, tx, resourceID, blackoutID)
		if err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return struct{}{}, ErrBlackoutNotFound
		}
		return struct{}{}, nil
	})
	return err
}

func snapshotFromEntity(r *resource.Resource) *ResourceSnapshot {
	rules := r.Rules()
	return &ResourceSnapshot{
		ID:                     r.ID(),
		OrgID:                  r.OrgID(),
		Name:                   r.Name(),
		Vertical:               r.Vertical().String(),
		SlotIntervalMinutes:    rules.SlotInterval(),
		DefaultDurationMinutes: rules.Duration(),
		MaxCapacityPerSlot:     rules.Capacity(),
		MinPartySize:           rules.MinPartySize(),
		AllowJoinExisting:      rules.AllowJoinExisting(),
		Timezone:               rules.Timezone(),
	}
}
