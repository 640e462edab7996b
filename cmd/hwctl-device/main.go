// Command hwctl-device runs a simulated hardware device behind an
// interactive lifecycle console.
//
// Usage:
//
//	hwctl-device [flags]
//
// Flags:
//
//	-type string        Device type: motion, contact (default "motion")
//	-config string      Configuration file path (YAML)
//	-id string          Device identifier for lifecycle events
//	-ready-after int    Power-on cycles before the unit reports READY
//	-retries int        Boot power-on attempts (default 3)
//	-poll-interval dur  Delay between readiness polls (default 100ms)
//	-log string         Binary lifecycle log path (.hlog)
//	-log-level string   Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Motion sensor that boots on the first power-on
//	hwctl-device -type motion
//
//	# Contact sensor that needs three power-on cycles, with event log
//	hwctl-device -type contact -ready-after 2 -log device.hlog
//
//	# Settings from a config file
//	hwctl-device -config device.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hwctl-project/hwctl-go/cmd/hwctl-device/interactive"
	"github.com/hwctl-project/hwctl-go/pkg/config"
	"github.com/hwctl-project/hwctl-go/pkg/controller"
	"github.com/hwctl-project/hwctl-go/pkg/hardware"
	"github.com/hwctl-project/hwctl-go/pkg/hwlog"
	"github.com/hwctl-project/hwctl-go/pkg/simulated"
)

var (
	flagType         string
	flagConfig       string
	flagID           string
	flagReadyAfter   int
	flagRetries      int
	flagPollInterval time.Duration
	flagLog          string
	flagLogLevel     string
)

func init() {
	flag.StringVar(&flagType, "type", config.DeviceTypeMotion, "Device type: motion, contact")
	flag.StringVar(&flagConfig, "config", "", "Configuration file path (YAML)")
	flag.StringVar(&flagID, "id", "", "Device identifier for lifecycle events")
	flag.IntVar(&flagReadyAfter, "ready-after", 0, "Power-on cycles before the unit reports READY")
	flag.IntVar(&flagRetries, "retries", 0, "Boot power-on attempts (0 = default)")
	flag.DurationVar(&flagPollInterval, "poll-interval", 0, "Delay between readiness polls (0 = default)")
	flag.StringVar(&flagLog, "log", "", "Binary lifecycle log path (.hlog)")
	flag.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setupLogging(cfg.Log.Level)

	log.Println("hwctl Simulated Device")
	log.Println("======================")
	log.Printf("Device type: %s", cfg.Device.Type)
	log.Printf("Device ID: %s", cfg.Device.ID)
	log.Printf("Ready after: %d power-on cycle(s)", cfg.Device.ReadyAfter)

	hw, sim := createHardware(cfg)

	sink, closeSink, err := createSink(cfg)
	if err != nil {
		log.Fatalf("Failed to open lifecycle log: %v", err)
	}
	defer closeSink()

	ctrl := controller.NewWithConfig(hw, controller.Config{
		DeviceID: cfg.Device.ID,
		Logger:   sink,
	})
	log.Printf("Session: %s", ctrl.SessionID())
	log.Printf("Capabilities: %s", ctrl.Capabilities())

	interval, err := cfg.Boot.Interval()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	console, err := interactive.New(ctrl, sim, controller.BootConfig{
		Retries:      cfg.Boot.Retries,
		PollInterval: interval,
	})
	if err != nil {
		log.Fatalf("Failed to start console: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	console.Run(ctx, cancel)

	// Leave the hardware powered off on exit.
	if err := ctrl.Shutdown(); err != nil {
		log.Printf("Shutdown: %v", err)
	}
}

// loadConfig merges the config file (if any) with command-line flags.
// Flags that were set explicitly override file values.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "type":
			cfg.Device.Type = flagType
		case "id":
			cfg.Device.ID = flagID
		case "ready-after":
			cfg.Device.ReadyAfter = flagReadyAfter
		case "retries":
			cfg.Boot.Retries = flagRetries
		case "poll-interval":
			cfg.Boot.PollInterval = flagPollInterval.String()
		case "log":
			cfg.Log.File = flagLog
		case "log-level":
			cfg.Log.Level = flagLogLevel
		}
	})

	if cfg.Device.Type != config.DeviceTypeMotion && cfg.Device.Type != config.DeviceTypeContact {
		return config.Config{}, fmt.Errorf("%w: unknown device type %q", config.ErrInvalidConfig, cfg.Device.Type)
	}
	return cfg, nil
}

// createHardware builds the simulated unit for the configured type.
func createHardware(cfg config.Config) (hardware.Interface, interactive.SimControl) {
	simCfg := simulated.Config{ReadyAfter: cfg.Device.ReadyAfter}
	switch cfg.Device.Type {
	case config.DeviceTypeContact:
		c := simulated.NewContactSensor(simCfg)
		return c, c
	default:
		m := simulated.NewMotionSensor(simCfg)
		return m, m
	}
}

// createSink builds the lifecycle event sink: a binary file logger when
// configured, plus console output at debug level.
func createSink(cfg config.Config) (hwlog.Logger, func(), error) {
	var sinks []hwlog.Logger
	closeSink := func() {}

	if cfg.Log.File != "" {
		fl, err := hwlog.NewFileLogger(cfg.Log.File)
		if err != nil {
			return nil, nil, err
		}
		sinks = append(sinks, fl)
		closeSink = func() { _ = fl.Close() }
	}

	if cfg.Log.Level == "debug" {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		sinks = append(sinks, hwlog.NewSlogAdapter(slog.New(handler)))
	}

	switch len(sinks) {
	case 0:
		return hwlog.NoopLogger{}, closeSink, nil
	case 1:
		return sinks[0], closeSink, nil
	default:
		return hwlog.NewMultiLogger(sinks...), closeSink, nil
	}
}

func setupLogging(level string) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	switch level {
	case "debug":
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	case "warn", "error":
		log.SetFlags(log.Ltime)
	}
}
