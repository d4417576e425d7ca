package main

import "time"

// Sleeper suspends the caller for a wall-clock duration.
type Sleeper interface {
	Sleep(time.Duration)
}

// realClock blocks the calling goroutine.
type realClock struct{}

func (realClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
