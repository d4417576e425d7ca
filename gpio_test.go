package main

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects the calls made against a TestPin and a TestClock.
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...interface{}) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

type TestPin struct {
	pin       uint8
	state     GpioState
	direction Direction
	writes    int
	closed    bool
	outputErr error
	writeErr  error
	failAfter int
	rec       *recorder
}

func newTestPin(pin uint8, rec *recorder) *TestPin {
	return &TestPin{pin: pin, rec: rec, failAfter: -1}
}

func (p *TestPin) Output(s GpioState) error {
	p.rec.add("configure(%d,%s)", p.pin, Output)
	if p.outputErr != nil {
		return p.outputErr
	}
	p.direction = Output
	p.state = s
	return nil
}

func (p *TestPin) Write(s GpioState) error {
	p.rec.add("set_level(%d,%d)", p.pin, s.Uint())
	if p.failAfter >= 0 && p.writes >= p.failAfter {
		return p.writeErr
	}
	p.writes++
	p.state = s
	return nil
}

func (p *TestPin) Read() (GpioState, error) {
	return p.state, nil
}

func (p *TestPin) Pin() uint8 {
	return p.pin
}

func (p *TestPin) Close() error {
	p.closed = true
	return nil
}

type TestClock struct {
	slept []time.Duration
	rec   *recorder
}

func (c *TestClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.rec.add("sleep(%s)", d)
}

func TestGpioState(t *testing.T) {
	assert.Equal(t, "High", High.String())
	assert.Equal(t, "Low", Low.String())
	assert.Equal(t, uint(1), High.Uint())
	assert.Equal(t, uint(0), Low.Uint())
	assert.Equal(t, Low, High.Toggle())
	assert.Equal(t, High, Low.Toggle())
	assert.Equal(t, "Output", Output.String())
	assert.Equal(t, "Input", Input.String())
}

func TestParseState(t *testing.T) {
	s, err := ParseState(0)
	require.NoError(t, err)
	assert.Equal(t, Low, s)
	s, err = ParseState(1)
	require.NoError(t, err)
	assert.Equal(t, High, s)
	_, err = ParseState(2)
	assert.Error(t, err)
}

func TestOpenDriver(t *testing.T) {
	t.Run("Unknown", func(t *testing.T) {
		_, err := OpenDriver("bogus")
		assert.Error(t, err)
	})

	t.Run("Log", func(t *testing.T) {
		d, err := OpenDriver("log")
		require.NoError(t, err)
		defer d.Close()
		assert.Equal(t, "log", d.Name())

		pin, err := d.Pin(27)
		require.NoError(t, err)
		assert.Equal(t, uint8(27), pin.Pin())
		require.NoError(t, pin.Output(Low))
		require.NoError(t, pin.Write(High))
		s, err := pin.Read()
		require.NoError(t, err)
		assert.Equal(t, High, s)
		assert.NoError(t, pin.Close())
	})
}

func TestHardwareFault(t *testing.T) {
	err := hardwareFault("no gpio line named GPIO%d", 99)
	assert.True(t, errors.Is(err, ErrHardwareFault))
	assert.Contains(t, err.Error(), "GPIO99")
}
