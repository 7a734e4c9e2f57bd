package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ticketflo/internal/infra"
	"ticketflo/internal/usecase/queries"
)

const resourceColumns = `
	id, org_id, name, vertical,
	slot_interval_minutes, default_duration_minutes, max_capacity_per_slot,
	min_party_size, allow_join_existing, timezone,
	created_at, updated_at`

type ResourceReadStore struct {
	pool *pgxpool.Pool
}

func NewResourceReadStore(pool *pgxpool.Pool) *ResourceReadStore {
	return &ResourceReadStore{pool: pool}
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+resourceColumns+` FROM resources WHERE id = $1`, id)

	view, err := scanResourceView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}
	return view, nil
}

func (r *ResourceReadStore) List(ctx context.Context, orgID uuid.UUID) ([]queries.ResourceView, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+resourceColumns+` FROM resources WHERE org_id = $1 ORDER BY name`, orgID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resources", err)
	}
	defer rows.Close()

	var views []queries.ResourceView
	for rows.Next() {
		view, err := scanResourceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan resource", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate resources", err)
	}
	return views, nil
}

func scanResourceView(row pgx.Row) (*queries.ResourceView, error) {
	var v queries.ResourceView
	err := row.Scan(
		&v.ID, &v.OrgID, &v.Name, &v.Vertical,
		&v.SlotIntervalMinutes, &v.DefaultDurationMinutes, &v.MaxCapacityPerSlot,
		&v.MinPartySize, &v.AllowJoinExisting, &v.Timezone,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
