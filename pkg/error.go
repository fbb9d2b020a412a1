package pkg

import "errors"

// Transport-level bus errors.
//
// These are the errors a bus transport implementation may return from its
// transaction primitives. The driver core never inspects them: a 24-series
// EEPROM signals "busy with internal write cycle" simply by not
// acknowledging its address, so any transmit failure is treated as
// potentially-busy and retried up to the bounded limit.
var (
	// ErrNACK indicates the device did not acknowledge a transaction.
	ErrNACK = errors.New("address not acknowledged")

	// ErrNoDevice indicates no device responded at the bus address.
	ErrNoDevice = errors.New("device not present")

	// ErrBusFault indicates a bus-level fault (arbitration loss, stuck
	// line, controller error).
	ErrBusFault = errors.New("bus fault")

	// ErrShortFrame indicates a write frame too short to carry the
	// 2-byte memory address header.
	ErrShortFrame = errors.New("frame too short")
)
