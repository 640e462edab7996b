package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwctl-project/hwctl-go/pkg/hardware"
	"github.com/hwctl-project/hwctl-go/pkg/hwlog"
)

var errFlaky = errors.New("bus glitch")

func TestBootConfigDefaults(t *testing.T) {
	cfg := BootConfig{}.withDefaults()
	assert.Equal(t, DefaultRetries, cfg.Retries)
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval)

	cfg = BootConfig{Retries: 5, PollInterval: time.Second}.withDefaults()
	assert.Equal(t, 5, cfg.Retries)
	assert.Equal(t, time.Second, cfg.PollInterval)
}

func TestBootPowerOnFaultConsumesAttempt(t *testing.T) {
	hw := &mockHardware{}
	hw.On("PowerOn").Return(errFlaky).Once()
	hw.On("PowerOn").Return(nil)
	hw.On("Status").Return(hardware.StatusReady, nil)

	sink := &recordingSink{}
	ctrl := NewWithConfig(hw, Config{DeviceID: "dev-1", Logger: sink})

	require.NoError(t, ctrl.Boot(context.Background(), fastBoot(3)))
	assert.True(t, ctrl.Ready())

	// Two attempt records: the consumed one and the successful one.
	attempts := sink.byCategory(hwlog.CategoryBootAttempt)
	require.Len(t, attempts, 2)
	assert.False(t, attempts[0].BootAttempt.Ready)
	assert.NotEmpty(t, attempts[0].BootAttempt.Error)
	assert.True(t, attempts[1].BootAttempt.Ready)

	hw.AssertExpectations(t)
}

func TestBootStatusFaultConsumesAttempt(t *testing.T) {
	hw := &mockHardware{}
	hw.On("PowerOn").Return(nil)
	hw.On("Status").Return("", errFlaky).Once()
	hw.On("Status").Return(hardware.StatusReady, nil)

	ctrl := New(hw)
	require.NoError(t, ctrl.Boot(context.Background(), fastBoot(3)))
	assert.True(t, ctrl.Ready())
	hw.AssertExpectations(t)
}

func TestBootAllAttemptsFault(t *testing.T) {
	hw := &mockHardware{}
	hw.On("PowerOn").Return(errFlaky)

	ctrl := New(hw)
	err := ctrl.Boot(context.Background(), fastBoot(3))
	require.ErrorIs(t, err, ErrBootTimeout)
	require.ErrorIs(t, err, errFlaky)
	assert.False(t, ctrl.Ready())

	ae, ok := IsAttemptError(err)
	require.True(t, ok)
	assert.Equal(t, 3, ae.Attempt)
	assert.Equal(t, "power_on", ae.Op)

	hw.AssertNumberOfCalls(t, "PowerOn", 3)
}

func TestBootUnknownStatusTreatedAsBooting(t *testing.T) {
	hw := &mockHardware{}
	hw.On("PowerOn").Return(nil)
	hw.On("Status").Return("WARMING_UP", nil).Times(pollsPerAttempt)
	hw.On("Status").Return(hardware.StatusReady, nil)

	ctrl := New(hw)
	require.NoError(t, ctrl.Boot(context.Background(), fastBoot(2)))
	assert.True(t, ctrl.Ready())
	hw.AssertNumberOfCalls(t, "PowerOn", 2)
}

func TestBootPollBudgetPerAttempt(t *testing.T) {
	hw := &mockHardware{}
	hw.On("PowerOn").Return(nil)
	hw.On("Status").Return(hardware.StatusBooting, nil)

	ctrl := New(hw)
	err := ctrl.Boot(context.Background(), fastBoot(2))
	require.ErrorIs(t, err, ErrBootTimeout)

	// The poll bound is fixed per attempt.
	hw.AssertNumberOfCalls(t, "Status", 2*pollsPerAttempt)
}

func TestBootTimeoutWithoutFaultHasNoAttemptError(t *testing.T) {
	hw := &mockHardware{}
	hw.On("PowerOn").Return(nil)
	hw.On("Status").Return(hardware.StatusBooting, nil)

	ctrl := New(hw)
	err := ctrl.Boot(context.Background(), fastBoot(1))
	require.ErrorIs(t, err, ErrBootTimeout)

	_, ok := IsAttemptError(err)
	assert.False(t, ok)
}

func TestBootCancellation(t *testing.T) {
	hw := &mockHardware{}
	hw.On("PowerOn").Return(nil)
	hw.On("Status").Return(hardware.StatusBooting, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ctrl := New(hw)
	err := ctrl.Boot(ctx, BootConfig{Retries: 3, PollInterval: time.Minute})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, ctrl.Ready())

	// Cancellation aborts the boot instead of consuming attempts.
	hw.AssertNumberOfCalls(t, "PowerOn", 1)
}

func TestBootEmitsStateChange(t *testing.T) {
	hw := &mockHardware{}
	hw.On("PowerOn").Return(nil)
	hw.On("Status").Return(hardware.StatusReady, nil)
	hw.On("PowerOff").Return(nil)

	sink := &recordingSink{}
	ctrl := NewWithConfig(hw, Config{DeviceID: "dev-1", Logger: sink})
	require.NoError(t, ctrl.Boot(context.Background(), fastBoot(1)))
	require.NoError(t, ctrl.Shutdown())

	changes := sink.byCategory(hwlog.CategoryStateChange)
	require.Len(t, changes, 2)
	assert.Equal(t, hwlog.StateReady, changes[0].StateChange.To)
	assert.Equal(t, "boot", changes[0].StateChange.Reason)
	assert.Equal(t, hwlog.StateNotReady, changes[1].StateChange.To)
	assert.Equal(t, "shutdown", changes[1].StateChange.Reason)

	// Every event carries the controller identity.
	for _, ev := range sink.events {
		assert.Equal(t, ctrl.SessionID(), ev.SessionID)
		assert.Equal(t, "dev-1", ev.DeviceID)
	}
}

func TestSendCommandPropagatesHardwareError(t *testing.T) {
	hw := &mockHardware{}
	hw.On("PowerOn").Return(nil)
	hw.On("Status").Return(hardware.StatusReady, nil)
	hw.On("Send", "PING").Return("", errFlaky)

	ctrl := New(hw)
	require.NoError(t, ctrl.Boot(context.Background(), fastBoot(1)))

	_, err := ctrl.SendCommand("PING")
	require.ErrorIs(t, err, errFlaky)
}

func TestCheckContactMalformedResponse(t *testing.T) {
	hw := &mockHardware{caps: hardware.NewCapabilitySet(hardware.CapabilityContact)}
	hw.On("PowerOn").Return(nil)
	hw.On("Status").Return(hardware.StatusReady, nil)
	hw.On("Send", hardware.CmdGetContact).Return("GARBAGE", nil)

	ctrl := New(hw)
	require.NoError(t, ctrl.Boot(context.Background(), fastBoot(1)))

	_, err := ctrl.CheckContact()
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestCheckContactPassesStateThrough(t *testing.T) {
	// The state value is not validated; whatever follows the colon is
	// returned as-is.
	hw := &mockHardware{caps: hardware.NewCapabilitySet(hardware.CapabilityContact)}
	hw.On("PowerOn").Return(nil)
	hw.On("Status").Return(hardware.StatusReady, nil)
	hw.On("Send", hardware.CmdGetContact).Return("CONTACT:AJAR", nil)

	ctrl := New(hw)
	require.NoError(t, ctrl.Boot(context.Background(), fastBoot(1)))

	state, err := ctrl.CheckContact()
	require.NoError(t, err)
	assert.Equal(t, "AJAR", state)
}
