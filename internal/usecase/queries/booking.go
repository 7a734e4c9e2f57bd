package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ticketflo/internal/domain/availability"
	"ticketflo/internal/domain/user"
	"ticketflo/internal/infra"
	"ticketflo/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

// BookingListItem is the compact row for paginated listings.
type BookingListItem struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	Date         string    `json:"date"`
	SlotStart    int       `json:"slot_start"`
	SlotEnd      int       `json:"slot_end"`
	PartySize    int       `json:"party_size"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, limit int, afterCreatedAt *time.Time, afterID *uuid.UUID) ([]*BookingListItem, error)
	FindByResourceAndDate(ctx context.Context, resourceID uuid.UUID, date availability.CalendarDate) ([]*BookingListItem, error)
	SnapshotsForDay(ctx context.Context, resourceID uuid.UUID, date availability.CalendarDate) ([]availability.ExistingBooking, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem bypasses actor checks, for idempotent replay responses.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
	ListByResourceAndDate(ctx context.Context, resourceID uuid.UUID, date availability.CalendarDate) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}

	// Owners see their own bookings; operators and admins see all.
	if view.UserID != actorID && actorRole == user.RoleViewer {
		return nil, ErrBookingAccess
	}

	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var afterCreatedAt *time.Time
	var afterID *uuid.UUID
	if after != nil && after.After != "" {
		t, id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, errs.Wrap(err, "invalid cursor")
		}
		afterCreatedAt = &t
		afterID = &id
	}

	// Fetch one extra row to know whether a next page exists.
	rows, err := q.readStore.FindByUserKeyset(ctx, userID, limit+1, afterCreatedAt, afterID)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}

	return rows, next, nil
}

func (q *bookingQueriesImpl) ListByResourceAndDate(ctx context.Context, resourceID uuid.UUID, date availability.CalendarDate) ([]*BookingListItem, error) {
	return q.readStore.FindByResourceAndDate(ctx, resourceID, date)
}
