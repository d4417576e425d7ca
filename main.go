package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	config, err := NewConfig(fs, os.Args[1:])
	if err != nil {
		Fatal("Bad arguments: %v", err)
	}
	if config.Debug() {
		EnableDebug()
	}
	Info("Starting: %s", config)
	if err := blink(config, realClock{}); err != nil {
		Fatal("%v", err)
	}
}

// blink opens the configured pin and runs the toggler against it.
func blink(config *Config, clock Sleeper) error {
	driver, err := OpenDriver(config.Driver())
	if err != nil {
		return fmt.Errorf("open gpio: %w", err)
	}
	defer driver.Close()

	pin, err := driver.Pin(config.Pin())
	if err != nil {
		return fmt.Errorf("open GPIO%d: %w", config.Pin(), err)
	}
	defer pin.Close()

	toggler := NewToggler(pin, clock, config.ToggleConfig())
	if err := toggler.Run(); err != nil {
		return err
	}
	Info("Done: wrote %v", toggler.Levels())
	return nil
}
