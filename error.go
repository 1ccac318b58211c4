package seqz

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Error provides context about a suspending operation that did not complete.
// The only failure surface in this package is context cancellation or
// deadline expiry while a suspending operation is waiting out its delay;
// Error records where the wait was interrupted, how long it had been
// waiting, and a snapshot of the container's values at that moment.
type Error[T Number] struct {
	InputData []T
	Timestamp time.Time
	Err       error
	Container Name
	Op        Name
	Duration  time.Duration
	Timeout   bool
	Canceled  bool
}

// Error implements the error interface, providing a detailed error message.
func (e *Error[T]) Error() string {
	location := fmt.Sprintf("container %q operation %q", e.Container, e.Op)

	if e.Timeout {
		return fmt.Sprintf("%s timed out after %v: %v", location, e.Duration, e.Err)
	}
	if e.Canceled {
		return fmt.Sprintf("%s canceled after %v: %v", location, e.Duration, e.Err)
	}
	return fmt.Sprintf("%s failed after %v: %v", location, e.Duration, e.Err)
}

// Unwrap returns the underlying error, supporting error wrapping patterns.
func (e *Error[T]) Unwrap() error {
	return e.Err
}

// IsTimeout returns true if the wait was cut short by a deadline.
func (e *Error[T]) IsTimeout() bool {
	return e.Timeout || errors.Is(e.Err, context.DeadlineExceeded)
}

// IsCanceled returns true if the wait was cut short by cancellation.
func (e *Error[T]) IsCanceled() bool {
	return e.Canceled || errors.Is(e.Err, context.Canceled)
}
