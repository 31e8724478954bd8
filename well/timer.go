package well

import "time"

// Timer accumulates elapsed time and fires once its period is reached. Firing
// resets the accumulator to zero, so at most one firing happens per Advance
// regardless of frame rate.
type Timer struct {
	Name    string
	Period  time.Duration
	Elapsed time.Duration
}

// NewTimer creates a named timer with the given period.
func NewTimer(name string, period time.Duration) Timer {
	return Timer{Name: name, Period: period}
}

// Advance adds dt and reports whether the timer fired.
func (t *Timer) Advance(dt time.Duration) bool {
	t.Elapsed += dt
	if t.Elapsed < t.Period {
		return false
	}
	t.Elapsed = 0
	return true
}

// Remaining returns the time left until the next firing.
func (t *Timer) Remaining() time.Duration {
	if t.Elapsed >= t.Period {
		return 0
	}
	return t.Period - t.Elapsed
}

// Reset zeroes the accumulator.
func (t *Timer) Reset() {
	t.Elapsed = 0
}
