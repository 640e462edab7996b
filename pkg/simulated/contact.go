package simulated

import (
	"errors"
	"sync"

	"github.com/hwctl-project/hwctl-go/pkg/hardware"
)

// ErrInvalidContactState is returned by SetContactState for states other
// than "OPEN" or "CLOSED".
var ErrInvalidContactState = errors.New("simulated: contact state must be OPEN or CLOSED")

// Contact states reported by a ContactSensor.
const (
	ContactOpen   = "OPEN"
	ContactClosed = "CLOSED"
)

// ContactSensor is a simulated contact-capable hardware unit.
// The default contact state is CLOSED.
type ContactSensor struct {
	unit

	contactMu    sync.Mutex
	contactState string
}

// NewContactSensor creates a contact sensor with the given configuration.
func NewContactSensor(cfg Config) *ContactSensor {
	return &ContactSensor{
		unit:         newUnit(cfg),
		contactState: ContactClosed,
	}
}

// Capabilities declares contact sensing support.
func (c *ContactSensor) Capabilities() hardware.CapabilitySet {
	return hardware.NewCapabilitySet(hardware.CapabilityContact)
}

// Send handles GET_CONTACT; any other command is acknowledged verbatim.
func (c *ContactSensor) Send(cmd string) (string, error) {
	if err := c.accept(cmd); err != nil {
		return "", err
	}

	if cmd == hardware.CmdGetContact {
		c.contactMu.Lock()
		defer c.contactMu.Unlock()
		return hardware.ContactResponsePrefix + c.contactState, nil
	}

	return "ACK:" + cmd, nil
}

// SetContactState sets the contact state. State must be ContactOpen or
// ContactClosed.
func (c *ContactSensor) SetContactState(state string) error {
	if state != ContactOpen && state != ContactClosed {
		return ErrInvalidContactState
	}
	c.contactMu.Lock()
	defer c.contactMu.Unlock()
	c.contactState = state
	return nil
}

// Compile-time interface satisfaction checks.
var (
	_ hardware.Interface          = (*ContactSensor)(nil)
	_ hardware.CapabilityReporter = (*ContactSensor)(nil)
)
