package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingConflict  = errors.New("booking conflict")
	ErrDuplicateBooking = errors.New("duplicate booking")
	ErrSlotNotBookable  = errors.New("slot not bookable")

	// Schedule errors
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrBlackoutNotFound = errors.New("blackout date not found")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
