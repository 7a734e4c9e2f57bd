package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"ticketflo/internal/infra"
	"ticketflo/internal/usecase/commands"
)

const resourceSnapshotColumns = `
	id, org_id, name, vertical,
	slot_interval_minutes, default_duration_minutes, max_capacity_per_slot,
	min_party_size, allow_join_existing, timezone,
	created_at, updated_at`

type ResourceRepository struct{}

func NewResourceRepository() *ResourceRepository {
	return &ResourceRepository{}
}

func (r *ResourceRepository) FindByID(ctx context.Context, tx infra.DBTX, id uuid.UUID) (*commands.ResourceSnapshot, error) {
	row := tx.QueryRow(ctx,
		`SELECT `+resourceSnapshotColumns+` FROM resources WHERE id = $1`, id)
	return scanResourceSnapshot(row)
}

func (r *ResourceRepository) FindByIDForUpdate(ctx context.Context, tx infra.DBTX, id uuid.UUID) (*commands.ResourceSnapshot, error) {
	row := tx.QueryRow(ctx,
		`SELECT `+resourceSnapshotColumns+` FROM resources WHERE id = $1 FOR UPDATE`, id)
	return scanResourceSnapshot(row)
}

func (r *ResourceRepository) UpdateRules(ctx context.Context, tx infra.DBTX, id uuid.UUID, snapshot *commands.ResourceSnapshot) error {
	tag, err := tx.Exec(ctx, `
		UPDATE resources
		SET slot_interval_minutes = $1,
		    default_duration_minutes = $2,
		    max_capacity_per_slot = $3,
		    min_party_size = $4,
		    allow_join_existing = $5,
		    timezone = $6,
		    updated_at = now()
		WHERE id = $7`,
		snapshot.SlotIntervalMinutes,
		snapshot.DefaultDurationMinutes,
		snapshot.MaxCapacityPerSlot,
		snapshot.MinPartySize,
		snapshot.AllowJoinExisting,
		snapshot.Timezone,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update resource rules", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("resource not found", infra.KindNotFound)
	}
	return nil
}

func scanResourceSnapshot(row pgx.Row) (*commands.ResourceSnapshot, error) {
	var s commands.ResourceSnapshot
	err := row.Scan(
		&s.ID, &s.OrgID, &s.Name, &s.Vertical,
		&s.SlotIntervalMinutes, &s.DefaultDurationMinutes, &s.MaxCapacityPerSlot,
		&s.MinPartySize, &s.AllowJoinExisting, &s.Timezone,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find resource", err)
	}
	return &s, nil
}
