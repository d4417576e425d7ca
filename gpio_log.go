package main

// logDriver hands out pins that only log their changes, for running away
// from the board.
type logDriver struct{}

func (d *logDriver) Name() string {
	return "log"
}

func (d *logDriver) Pin(number uint8) (PiPin, error) {
	return &logPin{number: number}, nil
}

func (d *logDriver) Close() error {
	return nil
}

type logPin struct {
	number    uint8
	direction Direction
	state     GpioState
}

func (p *logPin) Output(s GpioState) error {
	p.direction = Output
	p.state = s
	Info("GPIO%d configured as %s, level %d", p.number, p.direction, s.Uint())
	return nil
}

func (p *logPin) Write(s GpioState) error {
	p.state = s
	Info("GPIO%d set to %d", p.number, s.Uint())
	return nil
}

func (p *logPin) Read() (GpioState, error) {
	return p.state, nil
}

func (p *logPin) Pin() uint8 {
	return p.number
}

func (p *logPin) Close() error {
	Info("GPIO%d released", p.number)
	return nil
}
