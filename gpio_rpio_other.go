//go:build !linux

package main

import "runtime"

// openRpio is unavailable off Linux; go-rpio needs /dev/gpiomem.
func openRpio() (Driver, error) {
	return nil, hardwareFault("rpio driver is not supported on %s", runtime.GOOS)
}
