package device

import (
	"github.com/ardnew/eeprom24/device/hal"
	"github.com/ardnew/eeprom24/pkg"
)

// Device is a driver for one 24-series 64 Kbit EEPROM behind a [hal.Bus].
//
// A Device owns its bus handle and command buffer exclusively. Its
// operations are synchronous, blocking, and non-reentrant; it is not safe
// for concurrent use.
type Device struct {
	bus  hal.Bus
	addr uint16

	// Command buffer: 2-byte address header + at most one page of data.
	// Reused for every transaction.
	cmd [CommandBufferSize]byte
}

// New returns a driver for the device strapped to the given hardware
// address bits. addressBits is the E0-E2 pin configuration (0-7); bits
// above the low three are ignored.
func New(bus hal.Bus, addressBits uint8) *Device {
	return &Device{
		bus:  bus,
		addr: BaseAddress | uint16(addressBits&AddressBitsMask),
	}
}

// Addr returns the 7-bit bus address the driver targets.
func (d *Device) Addr() uint16 { return d.addr }

// Write stores data at address, splitting the transfer at page boundaries
// as required by the device. A write starting mid-page transfers only the
// remainder of that page first, then full pages, then a final partial
// page. A zero-length write touches the bus not at all.
//
// delay paces the write-cycle busy polling between page transactions;
// pass [hal.Sleep] unless testing. On failure the transport's error is
// returned as-is; pages written before the failing one remain written
// (the device offers no atomicity across pages).
func (d *Device) Write(address int, data []byte, delay hal.Delayer) error {
	pkg.LogDebug(pkg.ComponentDevice, "write", "address", address, "len", len(data))
	for off := 0; off < len(data); {
		n := pageChunk(address+off, len(data)-off)
		if err := d.writeRaw(address+off, data[off:off+n], delay); err != nil {
			return err
		}
		off += n
	}
	return nil
}

// Read fills data with len(data) bytes starting at address. A zero-length
// read touches the bus not at all. On failure the transport's error is
// returned as-is; chunks read before the failing one remain in data.
//
// Reads are chunked at page boundaries like writes. Sequential reads have
// no page restriction in hardware, but reusing the write path's
// decomposition keeps all addressing on one code path.
func (d *Device) Read(address int, data []byte) error {
	pkg.LogDebug(pkg.ComponentDevice, "read", "address", address, "len", len(data))
	for off := 0; off < len(data); {
		n := pageChunk(address+off, len(data)-off)
		if err := d.readRaw(address+off, data[off:off+n]); err != nil {
			return err
		}
		off += n
	}
	return nil
}

// writeRaw writes len(p) bytes at address in a single transaction. p must
// not extend past the end of the page containing address.
//
// After latching a write the device leaves the bus to run its internal
// write cycle and NAKs every transaction until it finishes. A failed
// transmit is therefore retried at WritePollInterval, up to WriteRetries
// times; only then is the transport error surfaced.
func (d *Device) writeRaw(address int, p []byte, delay hal.Delayer) error {
	d.cmd[0] = byte(address >> 8)
	d.cmd[1] = byte(address)
	copy(d.cmd[2:], p)

	frame := d.cmd[:2+len(p)]
	for attempt := 0; ; attempt++ {
		err := d.bus.Tx(d.addr, frame)
		if err == nil {
			return nil
		}
		if attempt >= WriteRetries {
			pkg.LogWarn(pkg.ComponentDevice, "page write failed",
				"address", address,
				"attempts", attempt+1,
				"error", err)
			return err
		}
		delay.DelayMS(WritePollInterval)
	}
}

// readRaw reads len(p) bytes at address in a single transaction: the
// 2-byte address header is transmitted, then p is filled under the same
// transaction. No retry: reads do not race the write cycle as long as the
// preceding Write has returned.
func (d *Device) readRaw(address int, p []byte) error {
	d.cmd[0] = byte(address >> 8)
	d.cmd[1] = byte(address)
	return d.bus.TxRx(d.addr, d.cmd[:2], p)
}
