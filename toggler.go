package main

import (
	"fmt"
	"time"
)

// ToggleConfig holds the fixed parameters of a blink run.
type ToggleConfig struct {
	Count   int           // number of level writes
	Delay   time.Duration // pause after each write
	Start   GpioState     // first level written
	Initial GpioState     // level applied when the pin becomes an output
}

// DefaultToggleConfig blinks four times, one second per level, starting High.
func DefaultToggleConfig() ToggleConfig {
	return ToggleConfig{
		Count:   4,
		Delay:   time.Second,
		Start:   High,
		Initial: Low,
	}
}

// Toggler alternates a single output pin between High and Low.
type Toggler struct {
	pin    PiPin
	clock  Sleeper
	config ToggleConfig
	levels []GpioState
}

func NewToggler(pin PiPin, clock Sleeper, config ToggleConfig) *Toggler {
	return &Toggler{
		pin:    pin,
		clock:  clock,
		config: config,
	}
}

// Run configures the pin as an output and then writes Count alternating
// levels, sleeping Delay after each one.  The run blocks until done and
// stops at the first pin error.
func (t *Toggler) Run() error {
	t.levels = t.levels[:0]
	if err := t.pin.Output(t.config.Initial); err != nil {
		return fmt.Errorf("configure GPIO%d: %w", t.pin.Pin(), err)
	}
	value := t.config.Start
	for i := 0; i < t.config.Count; i++ {
		if err := t.pin.Write(value); err != nil {
			return fmt.Errorf("set GPIO%d to %d: %w", t.pin.Pin(), value.Uint(), err)
		}
		t.levels = append(t.levels, value)
		Debug("GPIO%d: %d/%d %s", t.pin.Pin(), i+1, t.config.Count, value)
		t.clock.Sleep(t.config.Delay)
		value = value.Toggle()
	}
	return nil
}

// Levels returns the levels written by the most recent Run.
func (t *Toggler) Levels() []GpioState {
	out := make([]GpioState, len(t.levels))
	copy(out, t.levels)
	return out
}

func (t *Toggler) String() string {
	return fmt.Sprintf("Toggler: {Pin: %d, Count: %d, Delay: %s, Start: %s, Initial: %s}",
		t.pin.Pin(), t.config.Count, t.config.Delay, t.config.Start, t.config.Initial)
}
