package availability

import (
	"errors"
	"fmt"
)

// ErrConfig classifies malformed schedule/rules input. Callers surface these
// loudly; they are never a substitute for "no availability".
var ErrConfig = errors.New("invalid availability configuration")

var (
	ErrInvalidTimeRange  = fmt.Errorf("%w: time range must satisfy 0 <= start < end <= 1440", ErrConfig)
	ErrOverlappingRanges = fmt.Errorf("%w: time ranges within a day must not overlap", ErrConfig)
	ErrClosedDayRanges   = fmt.Errorf("%w: disabled day must have no time ranges", ErrConfig)
	ErrOpenDayEmpty      = fmt.Errorf("%w: enabled day must have at least one time range", ErrConfig)
	ErrIncompleteWeek    = fmt.Errorf("%w: weekly schedule must cover all seven weekdays", ErrConfig)
	ErrMissingWeekday    = fmt.Errorf("%w: no schedule entry for weekday", ErrConfig)
	ErrBadSlotInterval   = fmt.Errorf("%w: slot interval must be positive", ErrConfig)
	ErrBadDuration       = fmt.Errorf("%w: slot duration must be positive", ErrConfig)
	ErrBadCapacity       = fmt.Errorf("%w: slot capacity must be at least 1", ErrConfig)
	ErrBadMinPartySize   = fmt.Errorf("%w: minimum party size must be at least 1", ErrConfig)
	ErrMissingTimezone   = fmt.Errorf("%w: timezone is required", ErrConfig)
	ErrBadTimezone       = fmt.Errorf("%w: unknown timezone", ErrConfig)
	ErrInvalidDate       = fmt.Errorf("%w: invalid calendar date", ErrConfig)
	ErrDuplicateBlackout = fmt.Errorf("%w: duplicate blackout date", ErrConfig)
)
