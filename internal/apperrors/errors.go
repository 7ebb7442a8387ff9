package apperrors

import "fmt"

// NotFoundError is returned when no flight exists at the requested identifier.
type NotFoundError struct {
	ID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Flight not found with ID: %d", e.ID)
}

// ValidationError is returned when input fails domain validation before any
// store mutation happens. FieldErrors carries per-field messages when the
// failure came from struct validation; single-message failures leave it nil.
type ValidationError struct {
	Message     string
	FieldErrors map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError is returned when an optimistic-version update loses the race:
// the version the caller read is no longer the stored version.
type ConflictError struct {
	ID      uint
	Version int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Flight %d was modified concurrently (stale version %d)", e.ID, e.Version)
}

// StoreUnavailableError wraps storage failures that are not the caller's
// fault (connection loss, timeouts, unclassified driver errors).
type StoreUnavailableError struct {
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("flight store unavailable: %v", e.Err)
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }
