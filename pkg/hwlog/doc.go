// Package hwlog provides structured lifecycle logging for hwctl.
//
// This package defines the Logger interface and Event types for capturing
// device lifecycle events (boot attempts, readiness polls, commands, state
// changes). It is separate from operational logging (slog) - lifecycle
// capture provides a complete machine-readable event trace for debugging
// and analysis.
//
// # Basic Usage
//
// Applications configure logging by injecting a Logger into the controller:
//
//	// For development: log to console via slog
//	ctrl := controller.NewWithConfig(hw, controller.Config{
//	    Logger: hwlog.NewSlogAdapter(slog.Default()),
//	})
//
//	// For production: write to binary file
//	sink, _ := hwlog.NewFileLogger("/var/log/hwctl/device.hlog")
//	ctrl := controller.NewWithConfig(hw, controller.Config{Logger: sink})
//
//	// Both: use MultiLogger
//	ctrl := controller.NewWithConfig(hw, controller.Config{
//	    Logger: hwlog.NewMultiLogger(hwlog.NewSlogAdapter(slog.Default()), sink),
//	})
//
// # Event Types
//
// Events carry one type-specific payload:
//   - BootAttempt: outcome of one power-on attempt
//   - Poll: a single readiness poll and the status observed
//   - Command: a command sent to the hardware and its response
//   - StateChange: readiness transitions (NOT_READY <-> READY)
//   - Error: hardware faults surfaced during the lifecycle
//
// # File Format
//
// Log files use CBOR encoding with .hlog extension. The hwctl-log CLI tool
// provides viewing and statistics.
package hwlog
