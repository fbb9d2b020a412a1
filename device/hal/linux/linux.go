package linux

import (
	"io"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/ardnew/eeprom24/device/hal"
	"github.com/ardnew/eeprom24/pkg"
)

// HAL implements hal.Bus over a periph.io I2C bus.
type HAL struct {
	bus    i2c.Bus
	closer io.Closer
}

var _ hal.Bus = (*HAL)(nil)

// Open initializes the periph.io host drivers and opens the named I2C
// bus from the registry. An empty name selects the first available bus.
// The returned HAL owns the bus; release it with Close.
func Open(name string) (*HAL, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	bus, err := i2creg.Open(name)
	if err != nil {
		return nil, err
	}
	pkg.LogInfo(pkg.ComponentHAL, "bus open", "bus", bus.String())
	return &HAL{bus: bus, closer: bus}, nil
}

// New wraps an existing periph.io bus. The caller retains ownership of
// the bus; Close is a no-op.
func New(bus i2c.Bus) *HAL {
	return &HAL{bus: bus}
}

// Tx implements hal.Bus as a write-only periph transaction.
func (h *HAL) Tx(addr uint16, w []byte) error {
	return h.bus.Tx(addr, w, nil)
}

// TxRx implements hal.Bus as a write-then-read periph transaction
// (periph issues the repeated start between the two phases).
func (h *HAL) TxRx(addr uint16, w, r []byte) error {
	return h.bus.Tx(addr, w, r)
}

// Close releases the bus if this HAL opened it.
func (h *HAL) Close() error {
	if h.closer == nil {
		return nil
	}
	return h.closer.Close()
}
