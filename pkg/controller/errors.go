package controller

import (
	"errors"
	"fmt"
)

// Controller errors.
var (
	// ErrBootTimeout is returned when the device did not reach READY
	// within the retry/poll budget. The caller may retry Boot explicitly.
	ErrBootTimeout = errors.New("controller: device failed to boot within the retry budget")

	// ErrNotReady is returned when a command or capability call is
	// attempted while the controller is not READY.
	ErrNotReady = errors.New("controller: device is not ready")

	// ErrCapabilityUnsupported is returned when a capability call is made
	// on hardware that did not declare that capability. This indicates a
	// programming or configuration error, not a transient condition.
	ErrCapabilityUnsupported = errors.New("controller: capability not supported by hardware")

	// ErrMalformedResponse is returned when a capability response does not
	// match the expected shape.
	ErrMalformedResponse = errors.New("controller: malformed hardware response")
)

// AttemptError records a hardware fault that consumed one boot attempt.
// It distinguishes a recoverable per-attempt failure from the final
// exhausted-retries ErrBootTimeout, which wraps the last AttemptError.
type AttemptError struct {
	// Attempt is the 1-based attempt number.
	Attempt int

	// Op names the hardware call that failed (power_on, status).
	Op string

	// Err is the underlying hardware error.
	Err error
}

func (e *AttemptError) Error() string {
	return fmt.Sprintf("boot attempt %d: %s: %v", e.Attempt, e.Op, e.Err)
}

func (e *AttemptError) Unwrap() error { return e.Err }
