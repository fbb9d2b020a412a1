package device

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/eeprom24/device/hal"
	"github.com/ardnew/eeprom24/device/hal/mem"
	"github.com/ardnew/eeprom24/pkg"
)

// txRecord captures one bus transaction seen by traceBus.
type txRecord struct {
	addr uint16
	w    []byte
	rlen int
}

// traceBus records every transaction and replays scripted errors: entries
// of errs are consumed one per transaction, then err applies to all
// further transactions.
type traceBus struct {
	records []txRecord
	errs    []error
	err     error
}

func (b *traceBus) next() error {
	if len(b.errs) > 0 {
		e := b.errs[0]
		b.errs = b.errs[1:]
		return e
	}
	return b.err
}

func (b *traceBus) Tx(addr uint16, w []byte) error {
	b.records = append(b.records, txRecord{addr, append([]byte(nil), w...), 0})
	return b.next()
}

func (b *traceBus) TxRx(addr uint16, w, r []byte) error {
	b.records = append(b.records, txRecord{addr, append([]byte(nil), w...), len(r)})
	return b.next()
}

// countDelay records every DelayMS call.
type countDelay struct {
	calls []int
}

func (d *countDelay) DelayMS(ms int) { d.calls = append(d.calls, ms) }

// seq returns n bytes 0, 1, 2, ...
func seq(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i)
	}
	return p
}

func TestNewAddr(t *testing.T) {
	tests := []struct {
		bits uint8
		want uint16
	}{
		{0, 0x50},
		{1, 0x51},
		{5, 0x55},
		{7, 0x57},
		{0xFF, 0x57}, // only the low 3 bits strap
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("bits=%#x", tt.bits), func(t *testing.T) {
			d := New(&traceBus{}, tt.bits)
			assert.Equal(t, tt.want, d.Addr())
		})
	}
}

func TestWriteChunking(t *testing.T) {
	tests := []struct {
		name      string
		address   int
		length    int
		wantAddrs []int
		wantLens  []int
	}{
		{"mid-page start", 30, 5, []int{30, 32}, []int{2, 3}},
		{"aligned full page", 0, 32, []int{0}, []int{32}},
		{"zero length", 32, 0, nil, nil},
		{"span three pages", 10, 64, []int{10, 32, 64}, []int{22, 32, 10}},
		{"aligned multi-page", 64, 80, []int{64, 96, 128}, []int{32, 32, 16}},
		{"single byte at page end", 31, 1, []int{31}, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := &traceBus{}
			delay := &countDelay{}
			data := seq(tt.length)

			require.NoError(t, New(bus, 0).Write(tt.address, data, delay))
			require.Len(t, bus.records, len(tt.wantAddrs))
			assert.Empty(t, delay.calls, "no retries, no delays")

			for i, rec := range bus.records {
				assert.Equal(t, uint16(0x50), rec.addr)
				require.GreaterOrEqual(t, len(rec.w), 2)

				header := int(rec.w[0])<<8 | int(rec.w[1])
				payload := rec.w[2:]
				assert.Equal(t, tt.wantAddrs[i], header, "chunk %d address", i)
				assert.Equal(t, tt.wantLens[i], len(payload), "chunk %d length", i)
				assert.LessOrEqual(t, len(payload), PageSize)
			}

			// Payloads reassemble to the original data.
			var joined []byte
			for _, rec := range bus.records {
				joined = append(joined, rec.w[2:]...)
			}
			assert.True(t, bytes.Equal(joined, data))
		})
	}
}

func TestWriteFrameContents(t *testing.T) {
	bus := &traceBus{}
	d := New(bus, 3)

	require.NoError(t, d.Write(0x0123, []byte{0xDE, 0xAD}, &countDelay{}))

	require.Len(t, bus.records, 1)
	rec := bus.records[0]
	assert.Equal(t, uint16(0x53), rec.addr)
	assert.Equal(t, []byte{0x01, 0x23, 0xDE, 0xAD}, rec.w)
}

func TestWriteRetryExhaustion(t *testing.T) {
	bus := &traceBus{err: pkg.ErrNACK}
	delay := &countDelay{}

	err := New(bus, 0).Write(0x40, []byte{0xAA}, delay)

	assert.ErrorIs(t, err, pkg.ErrNACK)
	assert.Len(t, bus.records, WriteRetries+1, "11 total attempts")
	require.Len(t, delay.calls, WriteRetries, "one delay between attempts")
	for _, ms := range delay.calls {
		assert.Equal(t, WritePollInterval, ms)
	}
}

func TestWriteRetrySucceeds(t *testing.T) {
	for k := 1; k <= WriteRetries+1; k++ {
		t.Run(fmt.Sprintf("attempt-%d", k), func(t *testing.T) {
			bus := &traceBus{errs: make([]error, k-1)}
			for i := range bus.errs {
				bus.errs[i] = pkg.ErrNACK
			}
			delay := &countDelay{}

			err := New(bus, 0).Write(0x40, []byte{0xAA}, delay)

			assert.NoError(t, err)
			assert.Len(t, bus.records, k)
			assert.Len(t, delay.calls, k-1)
		})
	}
}

func TestWriteStopsAtFailedChunk(t *testing.T) {
	// First chunk (2 bytes at 30) succeeds; second fails every attempt.
	bus := &traceBus{errs: []error{nil}, err: pkg.ErrBusFault}
	delay := &countDelay{}

	err := New(bus, 0).Write(30, seq(5), delay)

	assert.ErrorIs(t, err, pkg.ErrBusFault)
	assert.Len(t, bus.records, 1+WriteRetries+1)
	assert.Len(t, delay.calls, WriteRetries)
}

func TestReadChunking(t *testing.T) {
	bus := &traceBus{}
	buf := make([]byte, 40)

	require.NoError(t, New(bus, 0).Read(16, buf))

	require.Len(t, bus.records, 2)
	assert.Equal(t, []byte{0x00, 16}, bus.records[0].w)
	assert.Equal(t, 16, bus.records[0].rlen)
	assert.Equal(t, []byte{0x00, 32}, bus.records[1].w)
	assert.Equal(t, 24, bus.records[1].rlen)
}

func TestReadZeroLength(t *testing.T) {
	bus := &traceBus{}
	require.NoError(t, New(bus, 0).Read(32, nil))
	assert.Empty(t, bus.records, "zero-length read touches the bus not at all")
}

func TestReadNoRetry(t *testing.T) {
	bus := &traceBus{err: pkg.ErrNACK}

	err := New(bus, 0).Read(0, make([]byte, 8))

	assert.ErrorIs(t, err, pkg.ErrNACK)
	assert.Len(t, bus.records, 1, "reads fail fast, no retry")
}

func TestRoundTrip(t *testing.T) {
	bus := mem.New(2)
	d := New(bus, 2)
	data := seq(100)

	require.NoError(t, d.Write(14, data, hal.Sleep))

	got := make([]byte, 100)
	require.NoError(t, d.Read(14, got))
	assert.Equal(t, data, got)

	assert.Equal(t, 4, bus.Writes(), "chunks 18+32+32+18")
	assert.Equal(t, 4, bus.Reads())
}

func TestRoundTripBusyDevice(t *testing.T) {
	// Each accepted write makes the simulated device NAK the next two
	// transactions; every page write after the first must poll through
	// the busy window.
	bus := mem.New(0)
	bus.SetWriteCycle(2)
	delay := &countDelay{}
	d := New(bus, 0)
	data := seq(100)

	require.NoError(t, d.Write(14, data, delay))

	assert.Equal(t, 4, bus.Writes())
	assert.Equal(t, 6, bus.NACKs(), "2 polls before each of writes 2-4")
	assert.Len(t, delay.calls, 6)
	assert.Equal(t, data, bus.Bytes(14, 100))
}

func TestWriteAcrossBusyDeviceKeepsPagesIntact(t *testing.T) {
	// Regression against intra-page wraparound: the simulated device
	// wraps unchunked writes within their page, so matching contents
	// after a multi-page write proves no transaction crossed a boundary.
	bus := mem.New(0)
	bus.SetWriteCycle(1)
	d := New(bus, 0)

	pattern := bytes.Repeat([]byte{0x5A, 0xA5, 0xF0, 0x0F}, 32) // 128 bytes
	require.NoError(t, d.Write(30, pattern, &countDelay{}))

	assert.Equal(t, pattern, bus.Bytes(30, len(pattern)))
	assert.Equal(t, []byte{0, 0}, bus.Bytes(28, 2), "bytes before window untouched")
}
