package mem

import (
	"github.com/ardnew/eeprom24/device/hal"
	"github.com/ardnew/eeprom24/pkg"
)

// Geometry of the simulated 64 Kbit part.
const (
	pageSize    = 32
	capacity    = 8192
	baseAddress = 0x50
)

// Bus simulates a single 24-series EEPROM on an otherwise empty I2C bus.
//
// Like the driver it serves, a Bus is not safe for concurrent use.
type Bus struct {
	addr  uint16
	cells [capacity]byte

	// Write-cycle model: after each accepted data write, the next
	// writeCycle transactions are NAKed.
	writeCycle int
	busy       int

	// Fault injection: the next failures transactions return failErr
	// before any other processing.
	failures int
	failErr  error

	// Transaction counters.
	transactions int
	writes       int
	reads        int
	nacks        int
}

var _ hal.Bus = (*Bus)(nil)

// New returns a simulated device strapped to the given hardware address
// bits (0-7; higher bits are ignored). The array is zero-filled and the
// write cycle is disabled until SetWriteCycle is called.
func New(addressBits uint8) *Bus {
	return &Bus{addr: baseAddress | uint16(addressBits&0x07)}
}

// SetWriteCycle configures the simulated write cycle: after each accepted
// data write, the next n transactions are NAKed. Zero disables the
// model (every transaction is accepted immediately).
func (b *Bus) SetWriteCycle(n int) { b.writeCycle = n }

// Settle completes any in-progress write cycle immediately, as if the
// caller had waited out t_W before the next transaction.
func (b *Bus) Settle() { b.busy = 0 }

// FailNext injects n transaction failures: the next n transactions return
// err without touching the array or the write-cycle state.
func (b *Bus) FailNext(n int, err error) {
	b.failures = n
	b.failErr = err
}

// Load copies p into the array starting at address, without bus
// semantics. Used to preload test fixtures.
func (b *Bus) Load(address int, p []byte) {
	copy(b.cells[address%capacity:], p)
}

// Bytes returns a copy of the array contents in [address, address+n).
func (b *Bus) Bytes(address, n int) []byte {
	p := make([]byte, n)
	copy(p, b.cells[address%capacity:])
	return p
}

// Transactions returns the total number of transactions attempted,
// including NAKed and injected-failure ones.
func (b *Bus) Transactions() int { return b.transactions }

// Writes returns the number of accepted data writes.
func (b *Bus) Writes() int { return b.writes }

// Reads returns the number of accepted read transactions.
func (b *Bus) Reads() int { return b.reads }

// NACKs returns the number of transactions rejected by the write-cycle
// model.
func (b *Bus) NACKs() int { return b.nacks }

// gate applies, in order, fault injection, device addressing, and the
// write-cycle model to an incoming transaction.
func (b *Bus) gate(addr uint16) error {
	b.transactions++
	if b.failures > 0 {
		b.failures--
		return b.failErr
	}
	if addr != b.addr {
		return pkg.ErrNoDevice
	}
	if b.busy > 0 {
		b.busy--
		b.nacks++
		return pkg.ErrNACK
	}
	return nil
}

// Tx implements hal.Bus. The frame is a 2-byte big-endian memory address
// followed by zero or more data bytes. Data bytes land within the page
// containing the target address, wrapping at the page boundary as the
// hardware does. A write with at least one data byte starts a write
// cycle.
func (b *Bus) Tx(addr uint16, w []byte) error {
	if err := b.gate(addr); err != nil {
		return err
	}
	if len(w) < 2 {
		return pkg.ErrShortFrame
	}

	a := (int(w[0])<<8 | int(w[1])) % capacity
	data := w[2:]

	page := a &^ (pageSize - 1)
	for i, c := range data {
		b.cells[page+(a+i)%pageSize] = c
	}

	if len(data) > 0 {
		b.busy = b.writeCycle
		b.writes++
	}
	return nil
}

// TxRx implements hal.Bus. The write phase carries the 2-byte address
// header; the read phase returns sequential bytes from that address,
// rolling over at the end of the array.
func (b *Bus) TxRx(addr uint16, w, r []byte) error {
	if err := b.gate(addr); err != nil {
		return err
	}
	if len(w) < 2 {
		return pkg.ErrShortFrame
	}

	a := (int(w[0])<<8 | int(w[1])) % capacity
	for i := range r {
		r[i] = b.cells[(a+i)%capacity]
	}

	b.reads++
	return nil
}
