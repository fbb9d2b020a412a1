// Package linux provides a hal.Bus backed by a periph.io I2C bus, for
// talking to real EEPROM hardware on Linux hosts.
//
// [Open] initializes the periph.io host drivers and claims a bus by
// registry name:
//
//	bus, err := linux.Open("")   // first available bus
//	bus, err := linux.Open("1")  // /dev/i2c-1
//
// [New] wraps an already-open periph.io bus, which also admits the
// i2ctest playback/record buses for hardware-free testing.
package linux
