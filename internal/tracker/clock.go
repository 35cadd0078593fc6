// ABOUTME: Clock abstraction for the tracker and stopwatch.
// ABOUTME: Substitutable for deterministic tests; real impl wraps time.
package tracker

import (
	"time"
)

// Clock provides the current time and a periodic tick source. The stop
// function returned by Tick releases the ticker and must always be called.
type Clock interface {
	Now() time.Time
	Tick(d time.Duration) (<-chan time.Time, func())
}

type systemClock struct{}

// SystemClock returns a Clock backed by the system time.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Tick(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}
