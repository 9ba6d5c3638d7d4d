package allocation

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("invalid allocation request")
	ErrPersistence = errors.New("allocation could not be persisted")
	ErrForbidden   = errors.New("you are not allowed to change allocations")
)

var (
	ErrUnsupportedMethod    = fmt.Errorf("%w: unsupported allocation method", ErrValidation)
	ErrNoParticipants       = fmt.Errorf("%w: at least one participant is required", ErrValidation)
	ErrDuplicateParticipant = fmt.Errorf("%w: participants must not contain duplicates", ErrValidation)
	ErrNegativeTotal        = fmt.Errorf("%w: the total must not be negative", ErrValidation)
	ErrNoAllocationData     = fmt.Errorf("%w: no allocation data found", ErrNotFound)
)

// persistenceError wraps a store error so that callers can check for
// ErrPersistence while the message of the store is kept.
func persistenceError(action string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, action, err)
}
