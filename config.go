package main

import (
	"flag"
	"fmt"
	"time"
)

var (
	defaultPin     uint = 27
	defaultCount        = 4
	defaultDelay        = time.Second
	defaultStart   uint = 1
	defaultInitial uint = 0
	defaultDriver       = "periph"
)

type Config struct {
	pin     *uint
	count   *int
	delay   *time.Duration
	start   *uint
	initial *uint
	driver  *string
	debug   *bool
}

func NewConfig(fs *flag.FlagSet, args []string) (*Config, error) {
	c := Config{}
	c.pin = fs.Uint("pin", defaultPin,
		"BCM GPIO number of the LED")
	c.count = fs.Int("count", defaultCount,
		"Number of times the level is written")
	c.delay = fs.Duration("delay", defaultDelay,
		"Pause after each write")
	c.start = fs.Uint("start", defaultStart,
		"First level written (0 or 1)")
	c.initial = fs.Uint("initial", defaultInitial,
		"Level applied when the pin is configured as an output (0 or 1)")
	c.driver = fs.String("driver", defaultDriver,
		fmt.Sprintf("GPIO driver, one of %v", Drivers))
	c.debug = fs.Bool("debug", false,
		"Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if *c.pin > 255 {
		return fmt.Errorf("pin %d out of range", *c.pin)
	}
	if *c.count < 0 {
		return fmt.Errorf("count must not be negative, got %d", *c.count)
	}
	if *c.delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", *c.delay)
	}
	if _, err := ParseState(*c.start); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if _, err := ParseState(*c.initial); err != nil {
		return fmt.Errorf("initial: %w", err)
	}
	for _, d := range Drivers {
		if d == *c.driver {
			return nil
		}
	}
	return fmt.Errorf("unknown gpio driver %q", *c.driver)
}

// ToggleConfig returns the settings the Toggler runs with.
func (c *Config) ToggleConfig() ToggleConfig {
	start, _ := ParseState(*c.start)
	initial, _ := ParseState(*c.initial)
	return ToggleConfig{
		Count:   *c.count,
		Delay:   *c.delay,
		Start:   start,
		Initial: initial,
	}
}

func (c *Config) Pin() uint8 {
	return uint8(*c.pin)
}

func (c *Config) Driver() string {
	return *c.driver
}

func (c *Config) Debug() bool {
	return *c.debug
}

func (c *Config) String() string {
	return fmt.Sprintf("Config: {pin:%d, count:%d, delay:%s, start:%d, initial:%d, "+
		"driver:\"%s\", debug:%t}",
		*c.pin, *c.count, *c.delay, *c.start, *c.initial, *c.driver, *c.debug)
}
