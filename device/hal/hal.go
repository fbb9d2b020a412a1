package hal

import "time"

// Bus is the blocking I2C transport used by the driver.
//
// Both methods address the device by its 7-bit bus address and run one
// complete bus transaction (start, transfer, stop) before returning.
// Implementations report failures with their own error values; the driver
// passes them through to the caller unmodified.
type Bus interface {
	// Tx transmits w to the device at addr in a single transaction.
	// A NACK at any point, including the address byte, is an error.
	Tx(addr uint16, w []byte) error

	// TxRx transmits w to the device at addr, then reads len(r) bytes
	// into r within the same transaction (repeated start, no intervening
	// stop condition).
	TxRx(addr uint16, w, r []byte) error
}

// Delayer provides the blocking millisecond delay used while polling the
// device during its internal write cycle.
type Delayer interface {
	DelayMS(ms int)
}

// DelayFunc adapts a function to the Delayer interface.
type DelayFunc func(ms int)

// DelayMS calls f(ms).
func (f DelayFunc) DelayMS(ms int) { f(ms) }

// Sleep is a Delayer backed by [time.Sleep].
var Sleep Delayer = DelayFunc(func(ms int) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
})
