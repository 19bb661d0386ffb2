package retry

import "time"

// Strategy produces the lazy sequence of delays separating retry attempts.
//
// Next returns the delay to wait before the next attempt. Once it reports
// ok == false the strategy is exhausted and every later call must report
// false as well; the retry session stops at that point.
//
// Strategies are stateful and scoped to a single retry session. Decorators
// such as WithMaxRetries and WithDeadline carry session-scoped counters and
// clocks, so build a fresh strategy per session (see StrategyFactory) rather
// than sharing instances.
type Strategy interface {
	Next() (delay time.Duration, ok bool)
}

// StrategyFunc is an adapter that allows a function to be used as a Strategy.
type StrategyFunc func() (time.Duration, bool)

// Next implements Strategy.
func (f StrategyFunc) Next() (time.Duration, bool) {
	return f()
}

// StrategyFactory builds a fresh Strategy for each retry session.
type StrategyFactory func() Strategy

// Constant returns a strategy that always yields the same delay.
func Constant(d time.Duration) Strategy {
	return constantStrategy{d: d}
}

type constantStrategy struct {
	d time.Duration
}

func (s constantStrategy) Next() (time.Duration, bool) {
	return s.d, true
}

// NoRetry returns a strategy that is exhausted from the start: the action
// runs exactly once and is never retried.
func NoRetry() Strategy {
	return noRetryStrategy{}
}

type noRetryStrategy struct{}

func (noRetryStrategy) Next() (time.Duration, bool) {
	return 0, false
}

// FromDurations returns a strategy that yields the given delays in order,
// then stops.
func FromDurations(delays ...time.Duration) Strategy {
	return &sliceStrategy{delays: append([]time.Duration(nil), delays...)}
}

type sliceStrategy struct {
	delays []time.Duration
}

func (s *sliceStrategy) Next() (time.Duration, bool) {
	if len(s.delays) == 0 {
		return 0, false
	}
	d := s.delays[0]
	s.delays = s.delays[1:]
	return d, true
}
