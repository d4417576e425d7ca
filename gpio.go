package main

import (
	"errors"
	"fmt"
)

// ErrHardwareFault is returned when the GPIO subsystem cannot provide the
// requested line, or refuses to drive it.
var ErrHardwareFault = errors.New("hardware fault")

// GpioState represents the current binary value of the pin.  Is it High or Low Voltage
type GpioState bool

const (
	// Low voltage registered on the pin (~0-1v)
	Low GpioState = false
	// High voltage registered on the pin (~1-3.3v)
	High GpioState = true
)

// String returns the string representation of the state.
func (s GpioState) String() string {
	if s == Low {
		return "Low"
	}
	return "High"
}

// Uint returns the binary value of the pin.
func (s GpioState) Uint() uint {
	if s == High {
		return 1
	}
	return 0
}

// Toggle returns the opposite state.
func (s GpioState) Toggle() GpioState {
	return !s
}

// ParseState converts a binary value into a GpioState.
func ParseState(v uint) (GpioState, error) {
	switch v {
	case 0:
		return Low, nil
	case 1:
		return High, nil
	default:
		return Low, fmt.Errorf("invalid level %d, expected 0 or 1", v)
	}
}

// Direction refers to the usage of the pin.  Is it being used for input or output?
type Direction bool

const (
	// Input means that the value of the pin will be read and is controlled externally.
	Input Direction = false
	// Output means that the value of the pin will be written to and is controlled internally.
	Output Direction = true
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	if d == Input {
		return "Input"
	}
	return "Output"
}

// PiPin represents a single GPIO line on the Raspberry Pi
type PiPin interface {
	// Output sets the pin to be written to and sets the initial state.
	Output(GpioState) error
	// Write sets the state of the pin
	Write(GpioState) error
	// Read returns the current state of the pin
	Read() (GpioState, error)
	// Pin returns the GPIO number of the pin.
	Pin() uint8
	// Close releases the resources related to the pin.
	Close() error
}

// Driver opens pins on a GPIO subsystem.
type Driver interface {
	// Name returns the name the driver is selected by.
	Name() string
	// Pin resolves a BCM GPIO number into a PiPin.
	Pin(number uint8) (PiPin, error)
	// Close releases the GPIO subsystem.
	Close() error
}

// Drivers lists the names accepted by OpenDriver.
var Drivers = []string{"periph", "rpio", "log"}

// OpenDriver initializes the named GPIO driver.
func OpenDriver(name string) (Driver, error) {
	switch name {
	case "periph":
		return openPeriph()
	case "rpio":
		return openRpio()
	case "log":
		return &logDriver{}, nil
	default:
		return nil, fmt.Errorf("unknown gpio driver %q", name)
	}
}

func hardwareFault(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrHardwareFault, fmt.Sprintf(format, args...))
}
