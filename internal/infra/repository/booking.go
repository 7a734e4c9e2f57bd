package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"ticketflo/internal/domain/availability"
	"ticketflo/internal/domain/booking"
	"ticketflo/internal/infra"
	"ticketflo/internal/usecase/commands"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx infra.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO bookings (id, resource_id, user_id, date, slot_start, slot_end, party_size, status, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		b.ID(), b.ResourceID(), b.UserID(), b.Date().String(),
		b.SlotStart(), b.SlotEnd(), b.PartySize(),
		b.Status().String(), b.Note().String(),
		b.CreatedAt(), b.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx infra.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := tx.Exec(ctx,
		`UPDATE bookings SET status = $1, updated_at = now() WHERE id = $2`,
		status.String(), id)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("booking not found", infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx infra.DBTX, id uuid.UUID) (*commands.BookingSnapshot, error) {
	row := tx.QueryRow(ctx, `
		SELECT id, resource_id, user_id, date, slot_start, slot_end, party_size, status, note, created_at, updated_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE`, id)
	return scanBookingSnapshot(row)
}

func (r *BookingRepository) SnapshotsForDay(ctx context.Context, tx infra.DBTX, resourceID uuid.UUID, date availability.CalendarDate) ([]availability.ExistingBooking, error) {
	rows, err := tx.Query(ctx, `
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

func scanBookingSnapshot(row pgx.Row) (*commands.BookingSnapshot, error) {
	var (
		s    commands.BookingSnapshot
		date time.Time
	)
	err := row.Scan(
		&s.ID, &s.ResourceID, &s.UserID, &date,
		&s.SlotStart, &s.SlotEnd, &s.PartySize, &s.Status, &s.Note,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	s.Date = availability.DateOf(date.UTC())
	return &s, nil
}
