package hardware

import "strings"

// Well-known status values reported by Status.
const (
	// StatusReady indicates the unit has completed boot and accepts commands.
	StatusReady = "READY"

	// StatusBooting indicates the unit is still powering up.
	StatusBooting = "BOOTING"
)

// Command vocabulary understood by capability-bearing units.
const (
	// CmdGetMotion queries the current motion detection state.
	CmdGetMotion = "GET_MOTION"

	// CmdGetContact queries the current contact state.
	CmdGetContact = "GET_CONTACT"
)

// Responses to CmdGetMotion.
const (
	MotionYes = "MOTION:YES"
	MotionNo  = "MOTION:NO"
)

// ContactResponsePrefix prefixes responses to CmdGetContact; the contact
// state follows the first colon.
const ContactResponsePrefix = "CONTACT:"

// Interface is the abstract hardware handle the controller operates on.
// Implementations are not required to be safe for concurrent use; the
// controller and its callers access a unit from a single logical owner.
type Interface interface {
	// PowerOn powers the unit. Booting begins; readiness is reported
	// via Status.
	PowerOn() error

	// PowerOff powers the unit down unconditionally.
	PowerOff() error

	// Status reports the current boot status. StatusReady means the unit
	// accepts commands; any other value means not yet ready.
	Status() (string, error)

	// Send delivers a command to the unit and returns its response.
	// Implementations typically fail with ErrNotPowered or ErrNotReady
	// when commanded too early.
	Send(command string) (string, error)
}

// Capability identifies an optional behavior a hardware unit may support.
type Capability uint8

const (
	// CapabilityMotion indicates the unit can report motion detection.
	CapabilityMotion Capability = iota + 1

	// CapabilityContact indicates the unit can report contact state.
	CapabilityContact
)

// String returns the capability name.
func (c Capability) String() string {
	switch c {
	case CapabilityMotion:
		return "MOTION"
	case CapabilityContact:
		return "CONTACT"
	default:
		return "UNKNOWN"
	}
}

// CapabilitySet is a bitmask of capabilities supported by a unit.
type CapabilitySet uint32

// NewCapabilitySet builds a set from the given capabilities.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	var s CapabilitySet
	for _, c := range caps {
		s = s.Add(c)
	}
	return s
}

// Add returns the set with c added.
func (s CapabilitySet) Add(c Capability) CapabilitySet {
	return s | 1<<c
}

// Has reports whether c is in the set.
func (s CapabilitySet) Has(c Capability) bool {
	return s&(1<<c) != 0
}

// String returns a "|"-joined list of capability names, or "NONE".
func (s CapabilitySet) String() string {
	var names []string
	for _, c := range []Capability{CapabilityMotion, CapabilityContact} {
		if s.Has(c) {
			names = append(names, c.String())
		}
	}
	if len(names) == 0 {
		return "NONE"
	}
	return strings.Join(names, "|")
}

// CapabilityReporter is implemented by hardware units that declare their
// capability set. Units that do not implement it are treated as having
// no optional capabilities.
type CapabilityReporter interface {
	Capabilities() CapabilitySet
}
