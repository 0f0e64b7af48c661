package patch

import "fmt"

// ConflictError signals that a snapshot's assumptions no longer hold:
// expected text moved, two changes overlap, or the store rejected a
// stale write. It is an internal retry signal, not a hard failure.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return "conflict: " + e.Reason
}

// conflictf builds a ConflictError from a format string.
func conflictf(format string, args ...any) *ConflictError {
	return &ConflictError{Reason: fmt.Sprintf(format, args...)}
}

// TimeoutError is returned when the retry budget is exhausted. Last
// carries the conflict that caused the final failed attempt, when one
// exists.
type TimeoutError struct {
	Budget string
	Last   error
}

func (e *TimeoutError) Error() string {
	if e.Last != nil {
		return fmt.Sprintf("retry budget %s exhausted: %v", e.Budget, e.Last)
	}
	return fmt.Sprintf("retry budget %s exhausted", e.Budget)
}

func (e *TimeoutError) Unwrap() error {
	return e.Last
}
