package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hwctl-project/hwctl-go/pkg/hardware"
	"github.com/hwctl-project/hwctl-go/pkg/hwlog"
)

// Controller drives the lifecycle of a single hardware unit.
// It holds a non-owning reference to the hardware handle, which must
// outlive the controller.
type Controller struct {
	hw   hardware.Interface
	caps hardware.CapabilitySet

	deviceID  string
	sessionID string
	logger    hwlog.Logger

	ready bool
}

// Config contains optional controller settings.
type Config struct {
	// DeviceID identifies the device in emitted lifecycle events.
	DeviceID string

	// Logger receives lifecycle events. Nil disables logging.
	Logger hwlog.Logger
}

// New creates a controller for hw with default settings: no device ID
// and a discarding event sink.
func New(hw hardware.Interface) *Controller {
	return NewWithConfig(hw, Config{})
}

// NewWithConfig creates a controller for hw with the given settings.
// The hardware's capability set is captured here: if hw implements
// hardware.CapabilityReporter its declared set is used, otherwise the
// controller assumes no optional capabilities.
func NewWithConfig(hw hardware.Interface, cfg Config) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = hwlog.NoopLogger{}
	}

	var caps hardware.CapabilitySet
	if r, ok := hw.(hardware.CapabilityReporter); ok {
		caps = r.Capabilities()
	}

	return &Controller{
		hw:        hw,
		caps:      caps,
		deviceID:  cfg.DeviceID,
		sessionID: uuid.NewString(),
		logger:    logger,
	}
}

// Ready reports whether the most recent boot observed READY and no
// shutdown occurred since.
func (c *Controller) Ready() bool {
	return c.ready
}

// SessionID returns the identifier stamped on this controller's
// lifecycle events.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// Capabilities returns the capability set captured at construction.
func (c *Controller) Capabilities() hardware.CapabilitySet {
	return c.caps
}

// SendCommand forwards command verbatim to the hardware and returns its
// response unchanged. Hardware errors propagate unmodified; there is no
// retry. Fails with ErrNotReady before a successful boot.
func (c *Controller) SendCommand(command string) (string, error) {
	if !c.ready {
		return "", ErrNotReady
	}

	resp, err := c.hw.Send(command)
	c.logCommand(command, resp, err)
	if err != nil {
		return "", err
	}
	return resp, nil
}

// CheckMotion queries the motion detection state. It returns true iff
// the hardware reports MOTION:YES; any other well-formed response is
// treated as no motion.
func (c *Controller) CheckMotion() (bool, error) {
	if !c.caps.Has(hardware.CapabilityMotion) {
		return false, fmt.Errorf("%w: %s", ErrCapabilityUnsupported, hardware.CapabilityMotion)
	}

	resp, err := c.SendCommand(hardware.CmdGetMotion)
	if err != nil {
		return false, err
	}
	return resp == hardware.MotionYes, nil
}

// CheckContact queries the contact state. The hardware responds with
// "CONTACT:<STATE>"; the state after the first colon is returned as-is,
// without validation of its value.
func (c *Controller) CheckContact() (string, error) {
	if !c.caps.Has(hardware.CapabilityContact) {
		return "", fmt.Errorf("%w: %s", ErrCapabilityUnsupported, hardware.CapabilityContact)
	}

	resp, err := c.SendCommand(hardware.CmdGetContact)
	if err != nil {
		return "", err
	}

	idx := strings.Index(resp, ":")
	if idx < 0 {
		return "", fmt.Errorf("%w: %q", ErrMalformedResponse, resp)
	}
	return resp[idx+1:], nil
}

// Shutdown powers the hardware off unconditionally and clears readiness.
// Readiness is cleared even if PowerOff reports an error.
func (c *Controller) Shutdown() error {
	err := c.hw.PowerOff()
	if c.ready {
		c.logStateChange(hwlog.StateReady, hwlog.StateNotReady, "shutdown")
	}
	c.ready = false
	return err
}

// event returns an Event stamped with the controller identity.
func (c *Controller) event(cat hwlog.Category) hwlog.Event {
	return hwlog.Event{
		Timestamp: time.Now(),
		SessionID: c.sessionID,
		DeviceID:  c.deviceID,
		Category:  cat,
	}
}

func (c *Controller) logCommand(command, resp string, err error) {
	ev := c.event(hwlog.CategoryCommand)
	ev.Command = &hwlog.CommandEvent{Command: command, Response: resp}
	if err != nil {
		ev.Command.Error = err.Error()
	}
	c.logger.Log(ev)
}

func (c *Controller) logStateChange(from, to hwlog.State, reason string) {
	ev := c.event(hwlog.CategoryStateChange)
	ev.StateChange = &hwlog.StateChangeEvent{From: from, To: to, Reason: reason}
	c.logger.Log(ev)
}

func (c *Controller) logError(op string, err error) {
	ev := c.event(hwlog.CategoryError)
	ev.Error = &hwlog.ErrorEventData{Message: err.Error(), Operation: op}
	c.logger.Log(ev)
}
