package retry

import (
	"math/rand/v2"
	"time"
)

// WithJitter wraps a strategy, scaling each delay by an independent uniform
// random draw in [0, 1). The jittered delay never exceeds the original.
func WithJitter(s Strategy) Strategy {
	return &jittered{inner: s, rnd: rand.Float64}
}

// WithJitterSource is WithJitter with an explicit random source, so the
// jittered sequence is reproducible.
func WithJitterSource(s Strategy, r *rand.Rand) Strategy {
	return &jittered{inner: s, rnd: r.Float64}
}

type jittered struct {
	inner Strategy
	rnd   func() float64
}

func (j *jittered) Next() (time.Duration, bool) {
	d, ok := j.inner.Next()
	if !ok {
		return 0, false
	}
	return scaleDelay(d, j.rnd()), true
}

// scaleDelay scales the whole-second and sub-second components separately,
// truncating toward zero, so the result is never larger than d.
func scaleDelay(d time.Duration, f float64) time.Duration {
	secs := float64(d/time.Second) * f
	rem := float64(d%time.Second) * f
	out := time.Duration(secs*float64(time.Second) + rem)
	if out > d {
		return d
	}
	return out
}

// WithMaxRetries wraps a strategy, stopping the sequence after max delays
// no matter how many more the inner strategy could produce.
func WithMaxRetries(max int, s Strategy) Strategy {
	return &limitedRetries{inner: s, max: max}
}

type limitedRetries struct {
	inner Strategy
	max   int
	taken int
}

func (l *limitedRetries) Next() (time.Duration, bool) {
	l.taken++
	if l.taken > l.max {
		return 0, false
	}
	return l.inner.Next()
}

// WithCap wraps a strategy, clamping every delay to max.
func WithCap(max time.Duration, s Strategy) Strategy {
	return StrategyFunc(func() (time.Duration, bool) {
		d, ok := s.Next()
		if !ok {
			return 0, false
		}
		return min(d, max), true
	})
}

// WithDeadline wraps a strategy, stopping the sequence once max wall-clock
// time has passed since construction, even while the inner strategy could
// still yield.
func WithDeadline(max time.Duration, s Strategy) Strategy {
	return WithDeadlineClock(max, s, realClock{})
}

// WithDeadlineClock is WithDeadline with an injected clock. Useful for
// testing.
func WithDeadlineClock(max time.Duration, s Strategy, clock Clock) Strategy {
	start := clock.Now()
	return StrategyFunc(func() (time.Duration, bool) {
		if clock.Now().Sub(start) > max {
			return 0, false
		}
		return s.Next()
	})
}
