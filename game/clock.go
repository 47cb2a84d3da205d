package game

import "time"

// Ticker turns variable frame time into fixed simulation ticks
type Ticker struct {
	period  time.Duration
	elapsed time.Duration
	ticks   uint64
}

func NewTicker(period time.Duration) *Ticker {
	return &Ticker{period: period}
}

// Advance adds one frame of elapsed time and reports whether a tick fired.
// At most one tick fires per frame; the remainder carries over, kept below one period.
func (t *Ticker) Advance(dt time.Duration) bool {
	if dt > 0 {
		t.elapsed += dt
	}
	if t.elapsed < t.period {
		return false
	}
	t.elapsed -= t.period
	if t.elapsed >= t.period {
		t.elapsed %= t.period
	}
	t.ticks++
	return true
}

// Ticks returns how many ticks have fired
func (t *Ticker) Ticks() uint64 {
	return t.ticks
}

// Elapsed returns the time accumulated towards the next tick
func (t *Ticker) Elapsed() time.Duration {
	return t.elapsed
}

// Progress returns how far into the current period the ticker is, in [0, 1)
func (t *Ticker) Progress() float64 {
	return float64(t.elapsed) / float64(t.period)
}

func (t *Ticker) Period() time.Duration {
	return t.period
}

// Reset drops any accumulated time
func (t *Ticker) Reset() {
	t.elapsed = 0
}
