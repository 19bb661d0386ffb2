package retry

import (
	"math"
	"time"
)

// maxDelay is the largest representable delay. Backoff arithmetic saturates
// here instead of wrapping.
const maxDelay = time.Duration(math.MaxInt64)

// maxMillis is the largest millisecond count that fits in a time.Duration.
const maxMillis = uint64(math.MaxInt64 / int64(time.Millisecond))

// ExponentialBackoff is a strategy driven by exponential back-off.
//
// Given a base b in milliseconds, the n-th delay (0-indexed) is b^(n+1)
// milliseconds. The sequence never exhausts on its own; compose it with
// WithMaxRetries or WithDeadline to bound the session. On overflow the
// delay saturates at the maximum representable value.
type ExponentialBackoff struct {
	current uint64
	base    uint64
	factor  uint64
}

// Exponential constructs an exponential back-off strategy from a base
// duration in milliseconds.
func Exponential(baseMillis uint64) *ExponentialBackoff {
	return &ExponentialBackoff{current: baseMillis, base: baseMillis, factor: 1}
}

// WithFactor scales every yielded delay by f without changing how the
// underlying sequence grows. A factor of 1000 turns a millisecond base into
// second-granularity delays.
func (s *ExponentialBackoff) WithFactor(f uint64) *ExponentialBackoff {
	s.factor = f
	return s
}

// Next implements Strategy.
func (s *ExponentialBackoff) Next() (time.Duration, bool) {
	d := millisToDelay(satMul(s.current, s.factor))
	s.current = satMul(s.current, s.base)
	return d, true
}

// FibonacciBackoff is a strategy driven by the Fibonacci series: each delay
// is the sum of the two preceding ones.
//
// The first two delays both equal the base, after which the sequence grows
// as a true Fibonacci series. Depending on the workload it can give better
// throughput than exponential back-off. Saturates at the maximum
// representable value on overflow.
type FibonacciBackoff struct {
	curr uint64
	next uint64
}

// Fibonacci constructs a Fibonacci back-off strategy from a base duration
// in milliseconds.
func Fibonacci(baseMillis uint64) *FibonacciBackoff {
	return &FibonacciBackoff{curr: baseMillis, next: baseMillis}
}

// Next implements Strategy.
func (s *FibonacciBackoff) Next() (time.Duration, bool) {
	d := millisToDelay(s.curr)
	s.curr, s.next = s.next, satAdd(s.curr, s.next)
	return d, true
}

func satMul(a, b uint64) uint64 {
	if b != 0 && a > math.MaxUint64/b {
		return math.MaxUint64
	}
	return a * b
}

func satAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

func millisToDelay(ms uint64) time.Duration {
	if ms > maxMillis {
		return maxDelay
	}
	return time.Duration(ms) * time.Millisecond
}
