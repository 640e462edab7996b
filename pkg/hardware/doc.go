// Package hardware defines the contract between the device controller
// and a physical or simulated hardware unit.
//
// A hardware unit is anything that can be powered on and off, reports a
// boot status, and accepts text commands:
//
//	type Interface interface {
//	    PowerOn() error
//	    PowerOff() error
//	    Status() (string, error)
//	    Send(command string) (string, error)
//	}
//
// Units that support optional capabilities (motion detection, contact
// sensing) additionally implement CapabilityReporter. The controller
// captures the capability set once at construction and uses it to gate
// capability-specific calls.
//
// Status values other than StatusReady are treated as "not yet ready";
// unknown values are legal and do not fail a boot.
package hardware
