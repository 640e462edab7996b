package simulated

import (
	"sync"

	"github.com/hwctl-project/hwctl-go/pkg/hardware"
)

// MotionSensor is a simulated motion-capable hardware unit.
type MotionSensor struct {
	unit

	motionMu       sync.Mutex
	motionDetected bool
}

// NewMotionSensor creates a motion sensor with the given configuration.
func NewMotionSensor(cfg Config) *MotionSensor {
	return &MotionSensor{unit: newUnit(cfg)}
}

// Capabilities declares motion detection support.
func (m *MotionSensor) Capabilities() hardware.CapabilitySet {
	return hardware.NewCapabilitySet(hardware.CapabilityMotion)
}

// Send handles GET_MOTION; any other command is acknowledged verbatim.
func (m *MotionSensor) Send(cmd string) (string, error) {
	if err := m.accept(cmd); err != nil {
		return "", err
	}

	if cmd == hardware.CmdGetMotion {
		m.motionMu.Lock()
		defer m.motionMu.Unlock()
		if m.motionDetected {
			return hardware.MotionYes, nil
		}
		return hardware.MotionNo, nil
	}

	return "ACK:" + cmd, nil
}

// SetMotionDetected sets the motion detection state.
func (m *MotionSensor) SetMotionDetected(detected bool) {
	m.motionMu.Lock()
	defer m.motionMu.Unlock()
	m.motionDetected = detected
}

// Compile-time interface satisfaction checks.
var (
	_ hardware.Interface          = (*MotionSensor)(nil)
	_ hardware.CapabilityReporter = (*MotionSensor)(nil)
)
