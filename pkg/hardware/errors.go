package hardware

import "errors"

// Errors raised by hardware implementations.
var (
	// ErrNotPowered is returned when a unit is commanded while powered off.
	ErrNotPowered = errors.New("hardware: unit is not powered on")

	// ErrNotReady is returned when a unit is commanded before boot completes.
	ErrNotReady = errors.New("hardware: unit is not ready")
)
