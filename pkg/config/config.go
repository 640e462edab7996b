// Package config provides YAML configuration loading for the hwctl-device
// console.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Device types accepted in configuration.
const (
	DeviceTypeMotion  = "motion"
	DeviceTypeContact = "contact"
)

// ErrInvalidConfig is returned when a configuration file fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root configuration for hwctl-device.
type Config struct {
	// Device configures the simulated hardware unit.
	Device DeviceConfig `yaml:"device"`

	// Boot configures the boot retry/poll budget.
	Boot BootConfig `yaml:"boot"`

	// Log configures logging output.
	Log LogConfig `yaml:"log"`
}

// DeviceConfig configures the simulated hardware unit.
type DeviceConfig struct {
	// Type selects the unit kind: "motion" or "contact".
	Type string `yaml:"type"`

	// ID identifies the device in lifecycle events.
	ID string `yaml:"id"`

	// ReadyAfter is the number of power-on cycles before the unit
	// reports READY.
	ReadyAfter int `yaml:"ready_after"`
}

// BootConfig configures the boot retry/poll budget.
type BootConfig struct {
	// Retries is the number of power-on attempts (default 3).
	Retries int `yaml:"retries"`

	// PollInterval is the delay between readiness polls as a duration
	// string, e.g. "100ms" or "1s" (default "100ms").
	PollInterval string `yaml:"poll_interval"`
}

// Interval parses PollInterval. An empty value returns 0, which selects
// the controller default.
func (b BootConfig) Interval() (time.Duration, error) {
	if b.PollInterval == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(b.PollInterval)
	if err != nil {
		return 0, fmt.Errorf("%w: poll_interval: %v", ErrInvalidConfig, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: poll_interval must be non-negative", ErrInvalidConfig)
	}
	return d, nil
}

// LogConfig configures logging output.
type LogConfig struct {
	// File is the binary lifecycle log path (empty disables file logging).
	File string `yaml:"file"`

	// Level is the operational log level: debug, info, warn, error.
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Device: DeviceConfig{Type: DeviceTypeMotion, ID: "sim-device"},
		Log:    LogConfig{Level: "info"},
	}
}

// Parse parses a configuration from YAML bytes and validates it.
// Missing fields keep the defaults from Default().
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load loads a configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w (file %s)", err, path)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Device.Type {
	case DeviceTypeMotion, DeviceTypeContact:
	default:
		return fmt.Errorf("%w: device type must be %q or %q, got %q",
			ErrInvalidConfig, DeviceTypeMotion, DeviceTypeContact, c.Device.Type)
	}
	if c.Device.ReadyAfter < 0 {
		return fmt.Errorf("%w: ready_after must be non-negative", ErrInvalidConfig)
	}
	if c.Boot.Retries < 0 {
		return fmt.Errorf("%w: boot retries must be non-negative", ErrInvalidConfig)
	}
	if _, err := c.Boot.Interval(); err != nil {
		return err
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}
