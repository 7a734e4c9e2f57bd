package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"ticketflo/internal/domain/availability"
	"ticketflo/internal/domain/booking"
	"ticketflo/internal/domain/user"
	reqdto "ticketflo/internal/handler/dto/request"
	"ticketflo/internal/infra"
	"ticketflo/internal/pkg/clock"
	"ticketflo/internal/pkg/errs"
	"ticketflo/internal/usecase/queries"
	"ticketflo/internal/usecase/shared"
)

var (
	ErrResourceNotFound        = errs.New("resource not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBookingAccess           = errs.New("booking access denied")
	ErrInvalidDate             = errs.New("invalid date")
	ErrSlotNotBookable         = errs.New("slot not bookable")
	ErrDuplicateBooking        = errs.New("duplicate booking")
	ErrBookingConflict         = errs.New("booking conflict")
	ErrIdempotencyInProgress   = errs.New("idempotency in progress")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingRepository interface {
	Create(ctx context.Context, tx infra.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx infra.DBTX, id uuid.UUID, status booking.Status) error
	FindByIDForUpdate(ctx context.Context, tx infra.DBTX, id uuid.UUID) (*BookingSnapshot, error)
	SnapshotsForDay(ctx context.Context, tx infra.DBTX, resourceID uuid.UUID, date availability.CalendarDate) ([]availability.ExistingBooking, error)
}

type ResourceRepository interface {
	FindByID(ctx context.Context, tx infra.DBTX, id uuid.UUID) (*ResourceSnapshot, error)
	// FindByIDForUpdate locks the resource row, serializing capacity checks
	// for concurrent bookings on the same resource.
	FindByIDForUpdate(ctx context.Context, tx infra.DBTX, id uuid.UUID) (*ResourceSnapshot, error)
	UpdateRules(ctx context.Context, tx infra.DBTX, id uuid.UUID, snapshot *ResourceSnapshot) error
}

type ScheduleRepository interface {
	WeekByResource(ctx context.Context, tx infra.DBTX, resourceID uuid.UUID) (availability.WeeklySchedule, error)
	BlackoutsByResource(ctx context.Context, tx infra.DBTX, resourceID uuid.UUID) ([]availability.BlackoutDate, error)
	ReplaceWeek(ctx context.Context, tx infra.DBTX, resourceID uuid.UUID, week availability.WeeklySchedule) error
	InsertBlackout(ctx context.Context, tx infra.DBTX, resourceID uuid.UUID, b availability.BlackoutDate) error
	DeleteBlackout(ctx context.Context, tx infra.DBTX, resourceID, blackoutID uuid.UUID) (int64, error)
}

type IdempotencyRepository interface {
	// TryInsert claims the key, reporting whether this request won the claim.
	TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, tx infra.DBTX, key, userID uuid.UUID, responseBodyHash string, resultBookingID uuid.UUID) error
	ClaimExpiredKey(ctx context.Context, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID, actorRole user.Role) error
	CompleteBooking(ctx context.Context, bookingID, actorID uuid.UUID, actorRole user.Role) error
}

type bookingCommandsImpl struct {
	bookingRepo     BookingRepository
	resourceRepo    ResourceRepository
	scheduleRepo    ScheduleRepository
	idempotencyRepo IdempotencyRepository
	factory         *booking.Factory
	bookingQueries  queries.BookingQueries
	db              *pgxpool.Pool
	clock           clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	resourceRepo ResourceRepository,
	scheduleRepo ScheduleRepository,
	idempotencyRepo IdempotencyRepository,
	factory *booking.Factory,
	bookingQueries queries.BookingQueries,
	db *pgxpool.Pool,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:     bookingRepo,
		resourceRepo:    resourceRepo,
		scheduleRepo:    scheduleRepo,
		idempotencyRepo: idempotencyRepo,
		factory:         factory,
		bookingQueries:  bookingQueries,
		db:              db,
		clock:           clk,
	}
}

func (c *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CreateBookingResult, error) {
	requestHash := c.calculateRequestHash(req)
	expiresAt := c.clock.Now().Add(24 * time.Hour)

	replayed, err := c.handleIdempotency(ctx, idempotencyKey, userID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CreateBookingResult{Booking: replayed, IsReplayed: true}, nil
	}

	bookingView, err := c.createNewBooking(ctx, req, userID, idempotencyKey)
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: bookingView, IsReplayed: false}, nil
}

func (c *bookingCommandsImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.BookingView, error) {
	inserted, err := c.idempotencyRepo.TryInsert(ctx, idempotencyKey, userID, "POST /bookings", requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := c.idempotencyRepo.Get(ctx, idempotencyKey, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	if existing.ExpiresAt.Before(c.clock.Now()) {
		claimed, claimErr := c.idempotencyRepo.ClaimExpiredKey(ctx, idempotencyKey, userID, requestHash, expiresAt)
		if claimErr != nil {
			return nil, errs.Mark(claimErr, ErrIdempotencyCheckFailed)
		}
		if claimed {
			return nil, nil
		}
		return nil, ErrIdempotencyInProgress
	}

	switch existing.Status {
	case "completed":
		if existing.ResultBookingID != nil {
			// Use system-level access for idempotency replay
			return c.bookingQueries.GetByIDSystem(ctx, *existing.ResultBookingID)
		}
		return nil, errs.New("completed request missing result booking ID")

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateBooking
		}
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (c *bookingCommandsImpl) createNewBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID, idempotencyKey uuid.UUID,
) (*queries.BookingView, error) {
	domainData, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	bookingID, err := shared.WithDefaultRetry(ctx, c.db, func(tx infra.DBTX) (uuid.UUID, error) {
		// Row lock on the resource serializes capacity checks for the day.
		snapshot, err := c.resourceRepo.FindByIDForUpdate(ctx, tx, req.ResourceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return uuid.Nil, ErrResourceNotFound
			}
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		resourceEntity, err := snapshot.ToEntity()
		if err != nil {
			return uuid.Nil, err
		}

		week, err := c.scheduleRepo.WeekByResource(ctx, tx, req.ResourceID)
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		blackouts, err := c.scheduleRepo.BlackoutsByResource(ctx, tx, req.ResourceID)
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		snapshots, err := c.bookingRepo.SnapshotsForDay(ctx, tx, req.ResourceID, domainData.Date)
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		bookingEntity, err := c.factory.CreateBooking(
			resourceEntity,
			week,
			blackouts,
			snapshots,
			userID,
			domainData.Date,
			req.SlotStart,
			req.PartySize,
			domainData.Note,
		)
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrSlotNotBookable)
		}

		id, err := c.bookingRepo.Create(ctx, tx, bookingEntity)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
				return uuid.Nil, ErrBookingConflict
			}
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		responseHash := c.calculateIDHash(id)
		if err := c.idempotencyRepo.UpdateStatusCompleted(ctx, tx, idempotencyKey, userID, responseHash, id); err != nil {
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return id, nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the full view from the read store.
	bookingView, err := c.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return bookingView, nil
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID, actorRole user.Role) error {
	return c.transitionBooking(ctx, bookingID, actorID, actorRole, func(b *booking.Booking) error {
		return b.Cancel()
	})
}

func (c *bookingCommandsImpl) CompleteBooking(ctx context.Context, bookingID, actorID uuid.UUID, actorRole user.Role) error {
	if actorRole == user.RoleViewer {
		return ErrBookingAccess
	}
	return c.transitionBooking(ctx, bookingID, actorID, actorRole, func(b *booking.Booking) error {
		return b.Complete()
	})
}

func (c *bookingCommandsImpl) transitionBooking(
	ctx context.Context,
	bookingID, actorID uuid.UUID,
	actorRole user.Role,
	transition func(*booking.Booking) error,
) error {
	_, err := shared.WithDefaultRetry(ctx, c.db, func(tx infra.DBTX) (struct{}, error) {
		snapshot, err := c.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, ErrBookingNotFound
			}
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if snapshot.UserID != actorID && actorRole == user.RoleViewer {
			return struct{}{}, ErrBookingAccess
		}

		bookingEntity := snapshot.ToEntity()
		if err := transition(bookingEntity); err != nil {
			return struct{}{}, errs.Mark(err, ErrDomainValidation)
		}

		if err := c.bookingRepo.UpdateStatus(ctx, tx, bookingID, bookingEntity.Status()); err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

func (c *bookingCommandsImpl) calculateRequestHash(req reqdto.CreateBookingRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func (c *bookingCommandsImpl) calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
