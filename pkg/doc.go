// Package pkg provides shared utilities for the eeprom24 driver.
//
// This package contains functionality used across the driver core and
// its HAL implementations:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error values for transport-level bus failures
//   - Component identifiers for log filtering
//
// # Logging
//
// The logging subsystem wraps [log/slog] with driver-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentDevice, "write complete", "address", 0x40)
//
// # Errors
//
// Bus-level failures are defined as sentinel values for use by HAL
// implementations. The driver core itself introduces no error kinds of
// its own: whatever the transport returns is what the caller sees.
//
//	if errors.Is(err, pkg.ErrNACK) {
//	    // Device did not acknowledge its address
//	}
package pkg
