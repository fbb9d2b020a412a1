// Package hal defines the hardware abstraction layer for the eeprom24
// driver.
//
// The driver core is platform-agnostic and reaches hardware only through
// the [Bus] interface, which models the two blocking I2C transactions the
// device uses: a plain write and a combined write-then-read. Concrete
// implementations are provided for real Linux buses
// ([github.com/ardnew/eeprom24/device/hal/linux], via periph.io) and for
// testing without hardware ([github.com/ardnew/eeprom24/device/hal/mem]).
//
// The [Delayer] interface supplies the blocking millisecond sleep used to
// pace write-cycle busy polling. Production code passes [Sleep]; tests
// pass a counting fake so polling behavior can be asserted without real
// time passing.
package hal
