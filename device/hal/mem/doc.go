// Package mem provides a simulated 24-series EEPROM for testing the
// driver without hardware.
//
// The simulation implements [hal.Bus] and models the behaviors of the
// physical part that the driver exists to handle:
//
//   - Intra-page address wraparound: a write that runs past its page
//     boundary wraps to the start of the same page and overwrites
//     earlier bytes, exactly as the hardware's internal address counter
//     does. Correct page chunking in the driver never triggers this.
//   - Write cycle: after accepting a data write the device NAKs a
//     configurable number of subsequent transactions, modeling the
//     period during which the part is committing the page internally.
//   - Sequential-read rollover: reads past the end of the array wrap to
//     address zero.
//
// Fault injection and transaction counters allow tests to script bus
// failures and assert exact transaction behavior.
package mem
