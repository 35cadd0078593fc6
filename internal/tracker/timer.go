// ABOUTME: Stopwatch for timing a live practice session.
// ABOUTME: Cooperative 1-second tick loop, cancelable via context.
package tracker

import (
	"context"
	"time"

	"github.com/harperreed/practice/internal/models"
)

// Stopwatch counts elapsed seconds off a clock tick until canceled.
type Stopwatch struct {
	clock Clock
}

// NewStopwatch creates a stopwatch driven by the given clock.
func NewStopwatch(clock Clock) *Stopwatch {
	return &Stopwatch{clock: clock}
}

// Run ticks once per second, invoking onTick with the running total,
// until the context is canceled. Returns total elapsed seconds.
func (s *Stopwatch) Run(ctx context.Context, onTick func(seconds int)) int {
	tick, stop := s.clock.Tick(time.Second)
	defer stop()

	seconds := 0
	for {
		select {
		case <-ctx.Done():
			return seconds
		case <-tick:
			seconds++
			if onTick != nil {
				onTick(seconds)
			}
		}
	}
}

// ElapsedMinutes converts elapsed seconds to minutes at the one-decimal
// precision practice entries use.
func ElapsedMinutes(seconds int) float64 {
	return models.RoundMinutes(float64(seconds) / 60)
}
