package simulated

import (
	"errors"
	"testing"

	"github.com/hwctl-project/hwctl-go/pkg/hardware"
)

func TestUnitReportsBootingUntilReadyAfter(t *testing.T) {
	hw := NewMotionSensor(Config{ReadyAfter: 2})

	for cycle := 1; cycle <= 2; cycle++ {
		if err := hw.PowerOn(); err != nil {
			t.Fatalf("PowerOn failed: %v", err)
		}
		status, err := hw.Status()
		if err != nil {
			t.Fatalf("Status failed: %v", err)
		}
		if status != hardware.StatusBooting {
			t.Errorf("cycle %d: got status %q, want %q", cycle, status, hardware.StatusBooting)
		}
	}

	if err := hw.PowerOn(); err != nil {
		t.Fatalf("PowerOn failed: %v", err)
	}
	status, err := hw.Status()
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if status != hardware.StatusReady {
		t.Errorf("got status %q, want %q after third power-on", status, hardware.StatusReady)
	}
}

func TestSendNotPowered(t *testing.T) {
	hw := NewMotionSensor(Config{})
	if _, err := hw.Send("PING"); !errors.Is(err, hardware.ErrNotPowered) {
		t.Errorf("got %v, want ErrNotPowered", err)
	}
}

func TestSendWhileBooting(t *testing.T) {
	hw := NewContactSensor(Config{ReadyAfter: 5})
	if err := hw.PowerOn(); err != nil {
		t.Fatalf("PowerOn failed: %v", err)
	}
	if _, err := hw.Send("PING"); !errors.Is(err, hardware.ErrNotReady) {
		t.Errorf("got %v, want ErrNotReady", err)
	}
}

func TestSendAcknowledgesUnknownCommands(t *testing.T) {
	hw := NewMotionSensor(Config{})
	if err := hw.PowerOn(); err != nil {
		t.Fatalf("PowerOn failed: %v", err)
	}

	resp, err := hw.Send("PING")
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if resp != "ACK:PING" {
		t.Errorf("got %q, want %q", resp, "ACK:PING")
	}
}

func TestMotionSensorRoundTrip(t *testing.T) {
	hw := NewMotionSensor(Config{})
	if err := hw.PowerOn(); err != nil {
		t.Fatalf("PowerOn failed: %v", err)
	}

	resp, err := hw.Send(hardware.CmdGetMotion)
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if resp != hardware.MotionNo {
		t.Errorf("got %q, want %q", resp, hardware.MotionNo)
	}

	hw.SetMotionDetected(true)
	resp, err = hw.Send(hardware.CmdGetMotion)
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if resp != hardware.MotionYes {
		t.Errorf("got %q, want %q", resp, hardware.MotionYes)
	}
}

func TestContactSensorRoundTrip(t *testing.T) {
	hw := NewContactSensor(Config{})
	if err := hw.PowerOn(); err != nil {
		t.Fatalf("PowerOn failed: %v", err)
	}

	resp, err := hw.Send(hardware.CmdGetContact)
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if resp != "CONTACT:CLOSED" {
		t.Errorf("got %q, want CONTACT:CLOSED", resp)
	}

	if err := hw.SetContactState(ContactOpen); err != nil {
		t.Fatalf("SetContactState failed: %v", err)
	}
	resp, err = hw.Send(hardware.CmdGetContact)
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if resp != "CONTACT:OPEN" {
		t.Errorf("got %q, want CONTACT:OPEN", resp)
	}
}

func TestContactSensorRejectsInvalidState(t *testing.T) {
	hw := NewContactSensor(Config{})
	if err := hw.SetContactState("AJAR"); !errors.Is(err, ErrInvalidContactState) {
		t.Errorf("got %v, want ErrInvalidContactState", err)
	}
}

func TestCommandJournal(t *testing.T) {
	hw := NewMotionSensor(Config{})
	if err := hw.PowerOn(); err != nil {
		t.Fatalf("PowerOn failed: %v", err)
	}

	// Rejected commands must not be journaled.
	if err := hw.PowerOff(); err != nil {
		t.Fatalf("PowerOff failed: %v", err)
	}
	if _, err := hw.Send("LOST"); err == nil {
		t.Fatal("expected error while powered off")
	}

	if err := hw.PowerOn(); err != nil {
		t.Fatalf("PowerOn failed: %v", err)
	}
	if _, err := hw.Send("PING"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if _, err := hw.Send(hardware.CmdGetMotion); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	cmds := hw.Commands()
	if len(cmds) != 2 || cmds[0] != "PING" || cmds[1] != hardware.CmdGetMotion {
		t.Errorf("unexpected journal: %v", cmds)
	}
}

func TestPowerOffRetainsBootProgress(t *testing.T) {
	hw := NewContactSensor(Config{ReadyAfter: 1})
	if err := hw.PowerOn(); err != nil {
		t.Fatalf("PowerOn failed: %v", err)
	}
	if err := hw.PowerOff(); err != nil {
		t.Fatalf("PowerOff failed: %v", err)
	}
	if hw.Powered() {
		t.Error("unit still reports powered after PowerOff")
	}

	// Second power-on crosses the ReadyAfter threshold.
	if err := hw.PowerOn(); err != nil {
		t.Fatalf("PowerOn failed: %v", err)
	}
	status, err := hw.Status()
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if status != hardware.StatusReady {
		t.Errorf("got status %q, want READY on second cycle", status)
	}
}
