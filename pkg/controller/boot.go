package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hwctl-project/hwctl-go/pkg/hardware"
	"github.com/hwctl-project/hwctl-go/pkg/hwlog"
)

// Boot defaults.
const (
	// DefaultRetries is the default number of power-on attempts.
	DefaultRetries = 3

	// DefaultPollInterval is the default delay between readiness polls.
	DefaultPollInterval = 100 * time.Millisecond
)

// pollsPerAttempt bounds status polling within a single power-on attempt.
// The bound is fixed and independent of the configured retries and poll
// interval. TODO: revisit whether this should be derived from BootConfig
// instead of being a fixed constant.
const pollsPerAttempt = 10

// BootConfig controls the boot retry/poll budget.
// Zero values select the defaults.
type BootConfig struct {
	// Retries is the number of power-on attempts.
	Retries int

	// PollInterval is the delay between readiness polls within an attempt.
	PollInterval time.Duration
}

// withDefaults returns cfg with zero values replaced by defaults.
func (cfg BootConfig) withDefaults() BootConfig {
	if cfg.Retries <= 0 {
		cfg.Retries = DefaultRetries
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	return cfg
}

// Boot attempts to boot the device and waits for it to become ready.
//
// For each of cfg.Retries attempts, the hardware is powered on and its
// status polled up to pollsPerAttempt times, sleeping cfg.PollInterval
// between polls. Observing READY on any poll marks the controller ready
// and returns nil. A hardware fault during power-on or polling consumes
// the attempt; the fault is recorded as an AttemptError on the event
// sink and the next attempt begins. When all attempts exhaust, Boot
// returns ErrBootTimeout (wrapping the last AttemptError, if any) and
// the controller stays NOT_READY.
//
// Boot blocks for up to retries * pollsPerAttempt * interval in the
// worst case; context cancellation aborts it between polls.
func (c *Controller) Boot(ctx context.Context, cfg BootConfig) error {
	cfg = cfg.withDefaults()

	var lastErr error
	for attempt := 1; attempt <= cfg.Retries; attempt++ {
		ready, polls, err := c.bootAttempt(ctx, attempt, cfg)
		if err != nil && ctx.Err() != nil {
			// Cancellation is not a consumed attempt.
			return err
		}

		c.logBootAttempt(attempt, polls, ready, err)

		if err != nil {
			lastErr = err
			continue
		}
		if ready {
			c.ready = true
			c.logStateChange(hwlog.StateNotReady, hwlog.StateReady, "boot")
			return nil
		}
	}

	if lastErr != nil {
		return fmt.Errorf("%w: %w", ErrBootTimeout, lastErr)
	}
	return ErrBootTimeout
}

// bootAttempt performs one power-on cycle and its readiness polls.
// It returns whether READY was observed, how many polls were issued, and
// the AttemptError that consumed the attempt, if any.
func (c *Controller) bootAttempt(ctx context.Context, attempt int, cfg BootConfig) (bool, int, error) {
	if err := c.hw.PowerOn(); err != nil {
		c.logError("power_on", err)
		return false, 0, &AttemptError{Attempt: attempt, Op: "power_on", Err: err}
	}

	for poll := 1; poll <= pollsPerAttempt; poll++ {
		status, err := c.hw.Status()
		if err != nil {
			c.logError("status", err)
			return false, poll, &AttemptError{Attempt: attempt, Op: "status", Err: err}
		}

		c.logPoll(attempt, poll, status)

		if status == hardware.StatusReady {
			return true, poll, nil
		}

		if poll < pollsPerAttempt {
			if err := contextSleep(ctx, cfg.PollInterval); err != nil {
				return false, poll, err
			}
		}
	}

	return false, pollsPerAttempt, nil
}

// contextSleep waits for the given duration or until the context is done,
// whichever comes first. Returns ctx.Err() if the context was cancelled.
func contextSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	}
}

// IsAttemptError reports whether err records a consumed boot attempt and
// returns the record when it does.
func IsAttemptError(err error) (*AttemptError, bool) {
	var ae *AttemptError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func (c *Controller) logBootAttempt(attempt, polls int, ready bool, err error) {
	ev := c.event(hwlog.CategoryBootAttempt)
	ev.BootAttempt = &hwlog.BootAttemptEvent{Attempt: attempt, Polls: polls, Ready: ready}
	if err != nil {
		ev.BootAttempt.Error = err.Error()
	}
	c.logger.Log(ev)
}

func (c *Controller) logPoll(attempt, poll int, status string) {
	ev := c.event(hwlog.CategoryPoll)
	ev.Poll = &hwlog.PollEvent{Attempt: attempt, Poll: poll, Status: status}
	c.logger.Log(ev)
}
