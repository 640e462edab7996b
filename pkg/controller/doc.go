// Package controller implements the device lifecycle controller.
//
// A Controller wraps a single hardware handle and drives it through a
// two-state lifecycle:
//
//	NOT_READY --Boot (READY observed)--> READY
//	READY     --Shutdown--------------> NOT_READY
//
// Boot powers the hardware on and polls its status with a bounded retry
// budget. Command dispatch (SendCommand, CheckMotion, CheckContact) is
// gated on readiness; a failed boot leaves the controller NOT_READY with
// no partial state.
//
// Capability checks are gated on the capability set the hardware declared
// at construction via hardware.CapabilityReporter, so calling CheckMotion
// on a contact-only unit fails with ErrCapabilityUnsupported regardless
// of readiness.
//
// # Concurrency
//
// A Controller is single-threaded by design: one controller instance per
// hardware handle, accessed from one goroutine at a time. Callers that
// need concurrent access must serialize it themselves. Boot blocks the
// calling goroutine for up to retries * 10 * poll-interval; pass a
// cancellable context to bound it.
//
// # Observability
//
// Lifecycle events (boot attempts, polls, commands, state changes,
// hardware faults) are emitted to an injected hwlog.Logger whose
// lifetime is tied to the controller's construction. The default sink
// discards events.
package controller
