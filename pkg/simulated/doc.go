// Package simulated provides in-memory hardware implementations.
//
// The simulated units implement hardware.Interface and
// hardware.CapabilityReporter and are used both by the hwctl-device
// console and as test doubles for the controller.
//
// Each unit models the boot behavior of real hardware: power-on cycles
// are counted, and Status reports READY only after the configured number
// of cycles has been exceeded. Commands sent while the unit is powered
// off or still booting fail the way real hardware does.
//
//	hw := simulated.NewMotionSensor(simulated.Config{ReadyAfter: 2})
//	ctrl := controller.New(hw)
//	err := ctrl.Boot(ctx, controller.BootConfig{Retries: 3})
package simulated
