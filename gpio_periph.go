package main

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

type periphDriver struct{}

// openPeriph loads the periph host drivers.  Calling it more than once is safe.
func openPeriph() (Driver, error) {
	state, err := host.Init()
	if err != nil {
		return nil, hardwareFault("periph host init: %v", err)
	}
	for _, f := range state.Failed {
		Debug("periph driver %s failed to load: %v", f.D, f.Err)
	}
	return &periphDriver{}, nil
}

func (d *periphDriver) Name() string {
	return "periph"
}

func (d *periphDriver) Pin(number uint8) (PiPin, error) {
	name := fmt.Sprintf("GPIO%d", number)
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, hardwareFault("no gpio line named %s", name)
	}
	return &periphPin{number: number, pin: p}, nil
}

func (d *periphDriver) Close() error {
	return nil
}

// periphPin implements a PiPin on top of a periph.io line.
type periphPin struct {
	number uint8
	pin    gpio.PinIO
}

func level(s GpioState) gpio.Level {
	if s == High {
		return gpio.High
	}
	return gpio.Low
}

// Output sets the pin to be written to.
func (p *periphPin) Output(s GpioState) error {
	if err := p.pin.Out(level(s)); err != nil {
		return hardwareFault("configure %s as output: %v", p.pin, err)
	}
	return nil
}

// Write sets the state of the pin
func (p *periphPin) Write(s GpioState) error {
	if err := p.pin.Out(level(s)); err != nil {
		return hardwareFault("write %s to %s: %v", s, p.pin, err)
	}
	return nil
}

// Read returns the current state of the pin
func (p *periphPin) Read() (GpioState, error) {
	if p.pin.Read() == gpio.High {
		return High, nil
	}
	return Low, nil
}

// Pin returns the GPIO number of the pin.
func (p *periphPin) Pin() uint8 {
	return p.number
}

// Close stops driving the line.
func (p *periphPin) Close() error {
	return p.pin.Halt()
}
