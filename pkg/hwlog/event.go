package hwlog

import "time"

// Event represents a device lifecycle log event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies a controller instance (UUID).
	SessionID string `cbor:"2,keyasint"`

	// DeviceID is the device identifier the controller was configured with.
	DeviceID string `cbor:"3,keyasint,omitempty"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	BootAttempt *BootAttemptEvent `cbor:"5,keyasint,omitempty"`
	Poll        *PollEvent        `cbor:"6,keyasint,omitempty"`
	Command     *CommandEvent     `cbor:"7,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"8,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"9,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryBootAttempt indicates the outcome of one power-on attempt.
	CategoryBootAttempt Category = 0
	// CategoryPoll indicates a single readiness poll.
	CategoryPoll Category = 1
	// CategoryCommand indicates a command dispatched to the hardware.
	CategoryCommand Category = 2
	// CategoryStateChange indicates a readiness transition.
	CategoryStateChange Category = 3
	// CategoryError indicates a hardware fault.
	CategoryError Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryBootAttempt:
		return "BOOT_ATTEMPT"
	case CategoryPoll:
		return "POLL"
	case CategoryCommand:
		return "COMMAND"
	case CategoryStateChange:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// BootAttemptEvent captures the outcome of one power-on attempt.
type BootAttemptEvent struct {
	// Attempt is the 1-based attempt number.
	Attempt int `cbor:"1,keyasint"`

	// Polls is the number of readiness polls issued during the attempt.
	Polls int `cbor:"2,keyasint"`

	// Ready indicates the attempt observed a READY status.
	Ready bool `cbor:"3,keyasint"`

	// Error holds the hardware error that consumed the attempt, if any.
	Error string `cbor:"4,keyasint,omitempty"`
}

// PollEvent captures a single readiness poll.
type PollEvent struct {
	// Attempt is the 1-based attempt number the poll belongs to.
	Attempt int `cbor:"1,keyasint"`

	// Poll is the 1-based poll number within the attempt.
	Poll int `cbor:"2,keyasint"`

	// Status is the raw status string the hardware reported.
	Status string `cbor:"3,keyasint"`
}

// CommandEvent captures a command sent to the hardware and its response.
type CommandEvent struct {
	// Command is the command string as sent.
	Command string `cbor:"1,keyasint"`

	// Response is the hardware response (empty on error).
	Response string `cbor:"2,keyasint,omitempty"`

	// Error holds the hardware error, if any.
	Error string `cbor:"3,keyasint,omitempty"`
}

// StateChangeEvent captures readiness transitions.
type StateChangeEvent struct {
	// From is the previous readiness state.
	From State `cbor:"1,keyasint"`

	// To is the new readiness state.
	To State `cbor:"2,keyasint"`

	// Reason describes what triggered the transition (boot, shutdown).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// State is a readiness state in a StateChangeEvent.
type State uint8

const (
	// StateNotReady indicates the device does not accept commands.
	StateNotReady State = 0
	// StateReady indicates the device accepts commands.
	StateReady State = 1
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNotReady:
		return "NOT_READY"
	case StateReady:
		return "READY"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures a hardware fault.
type ErrorEventData struct {
	// Message is the error text.
	Message string `cbor:"1,keyasint"`

	// Operation names the hardware call that failed (power_on, status, send).
	Operation string `cbor:"2,keyasint,omitempty"`
}
