//go:build linux

package main

import (
	rpio "github.com/stianeikeland/go-rpio/v4"
)

// maxHeaderGpio is the highest BCM number routed to the 40-pin header.
const maxHeaderGpio = 27

type rpioDriver struct{}

// openRpio maps the GPIO registers into memory.
func openRpio() (Driver, error) {
	if err := rpio.Open(); err != nil {
		return nil, hardwareFault("rpio open: %v", err)
	}
	return &rpioDriver{}, nil
}

func (d *rpioDriver) Name() string {
	return "rpio"
}

func (d *rpioDriver) Pin(number uint8) (PiPin, error) {
	if number > maxHeaderGpio {
		return nil, hardwareFault("GPIO%d is not on the header", number)
	}
	return &Gpio{gpioPin: rpio.Pin(number)}, nil
}

// Close unmaps the GPIO registers.
func (d *rpioDriver) Close() error {
	return rpio.Close()
}

// Gpio implements a PiPin interface for a Raspberry Pi system.
type Gpio struct {
	gpioPin rpio.Pin
}

func rState(s GpioState) rpio.State {
	if s == High {
		return rpio.High
	}
	return rpio.Low
}

// Output sets the pin to be written to.
func (g *Gpio) Output(s GpioState) error {
	g.gpioPin.Output()
	g.gpioPin.Write(rState(s))
	return nil
}

// Write sets the state of the pin
func (g *Gpio) Write(s GpioState) error {
	g.gpioPin.Write(rState(s))
	return nil
}

// Read returns the current state of the pin
func (g *Gpio) Read() (GpioState, error) {
	if g.gpioPin.Read() == rpio.High {
		return High, nil
	}
	return Low, nil
}

// Pin returns the GPIO number of the pin.
func (g *Gpio) Pin() uint8 {
	return uint8(g.gpioPin)
}

// Close returns the pin to input so it is no longer driven.
func (g *Gpio) Close() error {
	g.gpioPin.Input()
	return nil
}
