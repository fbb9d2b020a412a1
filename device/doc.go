// Package device implements a driver for 24-series 64 Kbit I2C EEPROMs
// (ST M24C64, Atmel AT24C64 and compatibles).
//
// The part presents 8192 bytes of storage as a flat address space,
// organized internally in 32-byte pages. Reads may span any range, but a
// single write transaction must stay within one page: the device's
// internal address counter wraps at the page boundary and earlier bytes
// in the page are silently overwritten. [Device.Write] therefore splits
// arbitrary-length writes into page-aligned transactions.
//
// After latching a write the device disconnects from the bus while it
// commits the page to non-volatile storage (the "write cycle", at most
// t_W = 10 ms per the datasheet) and NAKs every transaction until it
// finishes. The driver absorbs this by polling: a rejected page write is
// retried at 1 ms intervals up to 10 times before the bus error is
// surfaced to the caller.
//
// The driver is platform-agnostic and interacts with hardware via the
// [github.com/ardnew/eeprom24/device/hal] Bus interface. A periph.io
// backed implementation for real buses lives in
// [github.com/ardnew/eeprom24/device/hal/linux]; a simulated device for
// testing lives in [github.com/ardnew/eeprom24/device/hal/mem].
//
// # Zero-Allocation Design
//
// A Device owns a fixed 34-byte command buffer (2-byte address header
// plus one page) reused for every transaction, so steady-state operation
// performs no heap allocation. The buffer also bounds the largest
// possible transmit to one page, which the chunking logic never exceeds.
//
// Because the command buffer is shared across calls, a Device is not safe
// for concurrent use. Callers that share one device between goroutines
// must serialize access externally.
//
// # Example
//
//	bus, err := linux.Open("")
//	if err != nil {
//	    // ...
//	}
//	defer bus.Close()
//
//	dev := device.New(bus, 0) // E0-E2 strapped low
//	if err := dev.Write(0x0100, []byte("hello"), hal.Sleep); err != nil {
//	    // ...
//	}
package device
