package simulated

import (
	"sync"

	"github.com/hwctl-project/hwctl-go/pkg/hardware"
)

// Config contains settings shared by all simulated units.
type Config struct {
	// ReadyAfter is the number of power-on cycles after which Status
	// reports READY. Zero means the unit is ready after the first
	// power-on.
	ReadyAfter int
}

// unit holds the power and boot state common to all simulated hardware.
type unit struct {
	mu sync.Mutex

	powered    bool
	powerOns   int
	readyAfter int
	commands   []string
}

func newUnit(cfg Config) unit {
	return unit{readyAfter: cfg.ReadyAfter}
}

// PowerOn powers the unit and counts the cycle toward readiness.
func (u *unit) PowerOn() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.powered = true
	u.powerOns++
	return nil
}

// PowerOff powers the unit down. Boot progress is retained, matching
// hardware that keeps warm state across short power cycles.
func (u *unit) PowerOff() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.powered = false
	return nil
}

// Status reports READY once enough power-on cycles have occurred.
func (u *unit) Status() (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.powerOns > u.readyAfter {
		return hardware.StatusReady, nil
	}
	return hardware.StatusBooting, nil
}

// accept checks that the unit can take a command and records cmd in the
// journal when it can. Returns hardware.ErrNotPowered or
// hardware.ErrNotReady otherwise.
func (u *unit) accept(cmd string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.powered {
		return hardware.ErrNotPowered
	}
	if u.powerOns <= u.readyAfter {
		return hardware.ErrNotReady
	}
	u.commands = append(u.commands, cmd)
	return nil
}

// Commands returns a copy of the command journal in dispatch order.
func (u *unit) Commands() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]string, len(u.commands))
	copy(out, u.commands)
	return out
}

// Powered reports whether the unit is currently powered.
func (u *unit) Powered() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.powered
}
