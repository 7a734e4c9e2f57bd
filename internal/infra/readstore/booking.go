package readstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ticketflo/internal/domain/availability"
	"ticketflo/internal/infra"
	"ticketflo/internal/usecase/queries"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT b.id, b.resource_id, res.name, b.user_id, u.email,
		       b.date, b.slot_start, b.slot_end, b.party_size, b.status, b.note,
		       b.created_at, b.updated_at
		FROM bookings b
		JOIN resources res ON res.id = b.resource_id
		JOIN users u ON u.id = b.user_id
		WHERE b.id = $1`, id)

	var (
		v    queries.BookingView
		date time.Time
	)
	err := row.Scan(
		&v.ID, &v.ResourceID, &v.ResourceName, &v.UserID, &v.UserEmail,
		&date, &v.SlotStart, &v.SlotEnd, &v.PartySize, &v.Status, &v.Note,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	v.Date = availability.DateOf(date.UTC()).String()
	return &v, nil
}

func (r *BookingReadStore) FindByUserKeyset(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
	afterCreatedAt *time.Time,
	afterID *uuid.UUID,
) ([]*queries.BookingListItem, error) {
	const baseQuery = `
		SELECT b.id, b.resource_id, res.name,
		       b.date, b.slot_start, b.slot_end, b.party_size, b.status, b.created_at
		FROM bookings b
		JOIN resources res ON res.id = b.resource_id
		WHERE b.user_id = $1`

	var (
		rows pgx.Rows
		err  error
	)
	if afterCreatedAt != nil && afterID != nil {
		rows, err = r.pool.Query(ctx,
			baseQuery+` AND (b.created_at, b.id) < ($2, $3) ORDER BY b.created_at DESC, b.id DESC LIMIT $4`,
			userID, *afterCreatedAt, *afterID, limit)
	} else {
		rows, err = r.pool.Query(ctx,
			baseQuery+` ORDER BY b.created_at DESC, b.id DESC LIMIT $2`,
			userID, limit)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	return scanBookingListItems(rows)
}

func (r *BookingReadStore) FindByResourceAndDate(ctx context.Context, resourceID uuid.UUID, date availability.CalendarDate) ([]*queries.BookingListItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT b.id, b.resource_id, res.name,
		       b.date, b.slot_start, b.slot_end, b.party_size, b.status, b.created_at
		FROM bookings b
		JOIN resources res ON res.id = b.resource_id
		WHERE b.resource_id = $1 AND b.date = $2
		ORDER BY b.slot_start, b.created_at`,
		resourceID, date.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for day", err)
	}
	defer rows.Close()

	return scanBookingListItems(rows)
}

// SnapshotsForDay feeds the availability engine; it keeps every status and
// lets the engine ignore cancelled rows itself.
func (r *BookingReadStore) SnapshotsForDay(ctx context.Context, resourceID uuid.UUID, date availability.CalendarDate) ([]availability.ExistingBooking, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT slot_start, slot_end, party_size, status
		FROM bookings
		WHERE resource_id = $1 AND date = $2`,
		resourceID, date.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking snapshots", err)
	}
	defer rows.Close()

	var snapshots []availability.ExistingBooking
	for rows.Next() {
		var s availability.ExistingBooking
		if err := rows.Scan(&s.SlotStart, &s.SlotEnd, &s.PartySize, &s.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking snapshot", err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking snapshots", err)
	}
	return snapshots, nil
}

func scanBookingListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	var items []*queries.BookingListItem
	for rows.Next() {
		var (
			item queries.BookingListItem
			date time.Time
		)
		err := rows.Scan(
			&item.ID, &item.ResourceID, &item.ResourceName,
			&date, &item.SlotStart, &item.SlotEnd, &item.PartySize, &item.Status, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.Date = availability.DateOf(date.UTC()).String()
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, nil
}
