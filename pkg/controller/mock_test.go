package controller

import (
	"github.com/stretchr/testify/mock"

	"github.com/hwctl-project/hwctl-go/pkg/hardware"
	"github.com/hwctl-project/hwctl-go/pkg/hwlog"
)

// mockHardware is a testify mock of the hardware handle, used to inject
// faults the simulated units never produce.
type mockHardware struct {
	mock.Mock
	caps hardware.CapabilitySet
}

func (m *mockHardware) PowerOn() error {
	args := m.Called()
	return args.Error(0)
}

func (m *mockHardware) PowerOff() error {
	args := m.Called()
	return args.Error(0)
}

func (m *mockHardware) Status() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *mockHardware) Send(command string) (string, error) {
	args := m.Called(command)
	return args.String(0), args.Error(1)
}

func (m *mockHardware) Capabilities() hardware.CapabilitySet {
	return m.caps
}

var (
	_ hardware.Interface          = (*mockHardware)(nil)
	_ hardware.CapabilityReporter = (*mockHardware)(nil)
)

// recordingSink captures emitted lifecycle events for assertions.
type recordingSink struct {
	events []hwlog.Event
}

func (r *recordingSink) Log(event hwlog.Event) {
	r.events = append(r.events, event)
}

// byCategory returns the captured events of one category.
func (r *recordingSink) byCategory(cat hwlog.Category) []hwlog.Event {
	var out []hwlog.Event
	for _, ev := range r.events {
		if ev.Category == cat {
			out = append(out, ev)
		}
	}
	return out
}
