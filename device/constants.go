package device

// Device geometry (64 Kbit parts: M24C64, AT24C64 and compatibles).
const (
	// PageSize is the size of one write page in bytes. A single write
	// transaction must not cross a page boundary: the device's internal
	// address counter wraps within the page.
	PageSize = 32

	// Capacity is the total device capacity in bytes (64 Kbit).
	Capacity = 8192

	// CommandBufferSize is the size of the per-device command buffer:
	// a 2-byte big-endian memory address followed by at most one page of
	// data.
	CommandBufferSize = PageSize + 2
)

// Bus addressing.
const (
	// BaseAddress is the fixed 7-bit bus address of the 24-series EEPROM
	// family. The low 3 bits are set by the E0-E2 pin strapping.
	BaseAddress = 0x50

	// AddressBitsMask masks the pin-strapped hardware address bits.
	AddressBitsMask = 0x07
)

// Write-cycle polling.
const (
	// WriteRetries is the number of times a rejected page write is
	// retried before the transport error is returned. The datasheet
	// bounds the internal write cycle at t_W = 10 ms; with a 1 ms poll
	// interval, exhausting the retries means the device or bus is
	// faulted, not busy.
	WriteRetries = 10

	// WritePollInterval is the delay between write attempts, in
	// milliseconds.
	WritePollInterval = 1
)
