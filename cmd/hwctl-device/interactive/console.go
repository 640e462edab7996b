// Package interactive provides the interactive command-line interface
// for the hwctl device console.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/hwctl-project/hwctl-go/pkg/controller"
	"github.com/hwctl-project/hwctl-go/pkg/hardware"
	"github.com/hwctl-project/hwctl-go/pkg/simulated"
)

// SimControl is the view of a simulated unit the console needs beyond
// the controller: inspecting power state and the command journal.
type SimControl interface {
	Powered() bool
	Commands() []string
}

// Console handles interactive mode for hwctl-device.
type Console struct {
	ctrl    *controller.Controller
	sim     SimControl
	bootCfg controller.BootConfig
	rl      *readline.Instance
}

// New creates a new interactive console.
func New(ctrl *controller.Controller, sim SimControl, bootCfg controller.BootConfig) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "device> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Console{
		ctrl:    ctrl,
		sim:     sim,
		bootCfg: bootCfg,
		rl:      rl,
	}, nil
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Run starts the interactive command loop.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			c.printHelp()

		case "boot", "b":
			c.cmdBoot(ctx)

		case "status", "st":
			c.cmdStatus()

		case "send", "s":
			c.cmdSend(args)

		case "motion", "m":
			c.cmdMotion()

		case "contact":
			c.cmdContact()

		case "trip":
			c.cmdSetMotion(true)

		case "clear":
			c.cmdSetMotion(false)

		case "open":
			c.cmdSetContact(simulated.ContactOpen)

		case "close":
			c.cmdSetContact(simulated.ContactClosed)

		case "journal", "j":
			c.cmdJournal()

		case "shutdown", "off":
			c.cmdShutdown()

		case "quit", "exit", "q":
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(c.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.rl.Stdout(), `
hwctl Device Commands:
  Lifecycle:
    boot               - Boot the device and wait for readiness
    shutdown           - Power the device off
    status             - Show controller and hardware state

  Commands:
    send <cmd>         - Send a raw command (e.g. send PING)
    motion             - Query motion detection (motion units only)
    contact            - Query contact state (contact units only)
    journal            - Show commands the hardware has accepted

  Simulation:
    trip / clear       - Set or clear simulated motion
    open / close       - Set simulated contact state

  General:
    help               - Show this help
    quit               - Exit console`)
}

func (c *Console) cmdBoot(ctx context.Context) {
	fmt.Fprintln(c.rl.Stdout(), "Booting...")
	if err := c.ctrl.Boot(ctx, c.bootCfg); err != nil {
		if ae, ok := controller.IsAttemptError(err); ok {
			fmt.Fprintf(c.rl.Stdout(), "Boot failed: %v (last fault: %s on attempt %d)\n", err, ae.Op, ae.Attempt)
			return
		}
		fmt.Fprintf(c.rl.Stdout(), "Boot failed: %v\n", err)
		return
	}
	fmt.Fprintln(c.rl.Stdout(), "Device is READY")
}

func (c *Console) cmdStatus() {
	state := "NOT_READY"
	if c.ctrl.Ready() {
		state = "READY"
	}
	power := "off"
	if c.sim.Powered() {
		power = "on"
	}
	fmt.Fprintf(c.rl.Stdout(), "Controller: %s\n", state)
	fmt.Fprintf(c.rl.Stdout(), "Hardware power: %s\n", power)
	fmt.Fprintf(c.rl.Stdout(), "Capabilities: %s\n", c.ctrl.Capabilities())
	fmt.Fprintf(c.rl.Stdout(), "Session: %s\n", c.ctrl.SessionID())
}

func (c *Console) cmdSend(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: send <command>")
		return
	}
	resp, err := c.ctrl.SendCommand(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.rl.Stdout(), "Response: %s\n", resp)
}

func (c *Console) cmdMotion() {
	detected, err := c.ctrl.CheckMotion()
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
		return
	}
	if detected {
		fmt.Fprintln(c.rl.Stdout(), "Motion: DETECTED")
	} else {
		fmt.Fprintln(c.rl.Stdout(), "Motion: none")
	}
}

func (c *Console) cmdContact() {
	state, err := c.ctrl.CheckContact()
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.rl.Stdout(), "Contact: %s\n", state)
}

func (c *Console) cmdSetMotion(detected bool) {
	m, ok := c.sim.(*simulated.MotionSensor)
	if !ok {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n",
			fmt.Errorf("%w: %s", errNotSimulatedAs, hardware.CapabilityMotion))
		return
	}
	m.SetMotionDetected(detected)
	fmt.Fprintf(c.rl.Stdout(), "Simulated motion set to %v\n", detected)
}

func (c *Console) cmdSetContact(state string) {
	s, ok := c.sim.(*simulated.ContactSensor)
	if !ok {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n",
			fmt.Errorf("%w: %s", errNotSimulatedAs, hardware.CapabilityContact))
		return
	}
	if err := s.SetContactState(state); err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.rl.Stdout(), "Simulated contact set to %s\n", state)
}

func (c *Console) cmdJournal() {
	cmds := c.sim.Commands()
	if len(cmds) == 0 {
		fmt.Fprintln(c.rl.Stdout(), "No commands accepted yet")
		return
	}
	for i, cmd := range cmds {
		fmt.Fprintf(c.rl.Stdout(), "%3d  %s\n", i+1, cmd)
	}
}

func (c *Console) cmdShutdown() {
	if err := c.ctrl.Shutdown(); err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Shutdown error: %v\n", err)
		return
	}
	fmt.Fprintln(c.rl.Stdout(), "Device powered off")
}

// errNotSimulatedAs flags simulation controls used on the wrong unit kind.
var errNotSimulatedAs = errors.New("unit does not simulate")
