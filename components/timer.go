package components

import "time"

// Timer counts elapsed time toward a fixed duration. It saturates at the
// duration instead of wrapping, so a finished timer stays finished until Reset.
type Timer struct {
	Duration     time.Duration
	elapsed      time.Duration
	justFinished bool
}

func NewTimer(d time.Duration) Timer {
	return Timer{Duration: d}
}

// NewFinishedTimer returns a timer that has already run out.
func NewFinishedTimer(d time.Duration) Timer {
	t := NewTimer(d)
	t.elapsed = d
	return t
}

// Tick advances the timer by dt. Negative deltas are ignored.
func (t *Timer) Tick(dt time.Duration) *Timer {
	t.justFinished = false
	if t.Finished() || dt <= 0 {
		return t
	}

	t.elapsed += dt
	if t.elapsed >= t.Duration {
		t.elapsed = t.Duration
		t.justFinished = true
	}
	return t
}

func (t *Timer) Finished() bool {
	return t.elapsed >= t.Duration
}

// JustFinished reports whether the last Tick crossed into the finished state.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Reset re-arms the timer.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.justFinished = false
}

func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

func (t *Timer) Remaining() time.Duration {
	return t.Duration - t.elapsed
}

// Fraction returns progress in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return float64(t.elapsed) / float64(t.Duration)
}
