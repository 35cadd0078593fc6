// ABOUTME: Tests for the practice stopwatch and elapsed-time rounding.
// ABOUTME: Drives the tick channel by hand so the tests run instantly.
package tracker

import (
	"context"
	"testing"
	"time"
)

func TestStopwatchCountsTicksUntilCanceled(t *testing.T) {
	clock := newFakeClock(time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC))
	sw := NewStopwatch(clock)
	ctx, cancel := context.WithCancel(context.Background())

	var seen []int
	done := make(chan int)
	go func() {
		done <- sw.Run(ctx, func(seconds int) {
			seen = append(seen, seconds)
			if seconds == 3 {
				cancel()
			}
		})
	}()

	for i := 0; i < 3; i++ {
		clock.ticks <- time.Time{}
	}

	total := <-done
	if total != 3 {
		t.Errorf("Run returned %d seconds, want 3", total)
	}
	for i, s := range seen {
		if s != i+1 {
			t.Errorf("tick %d reported %d seconds, want %d", i, s, i+1)
		}
	}
}

func TestStopwatchImmediateCancel(t *testing.T) {
	clock := newFakeClock(time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC))
	sw := NewStopwatch(clock)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if total := sw.Run(ctx, nil); total != 0 {
		t.Errorf("Run on canceled context returned %d, want 0", total)
	}
}

func TestElapsedMinutes(t *testing.T) {
	tests := []struct {
		seconds int
		want    float64
	}{
		{0, 0},
		{2, 0},
		{3, 0.1},
		{60, 1},
		{90, 1.5},
		{61, 1},
		{3600, 60},
	}

	for _, tt := range tests {
		if got := ElapsedMinutes(tt.seconds); got != tt.want {
			t.Errorf("ElapsedMinutes(%d) = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}
