package retry

import (
	"context"
	"time"
)

// OnRetryFunc is called before each retry sleep.
type OnRetryFunc func(ctx context.Context, attempt int, err error, delay time.Duration)

// OnSuccessFunc is called when an attempt succeeds.
type OnSuccessFunc func(ctx context.Context, attempts int)

// OnExhaustedFunc is called when the strategy is exhausted. It is not
// called when the condition rejects a failure.
type OnExhaustedFunc func(ctx context.Context, attempts int, err error)

// config holds the settings for one retry session.
type config struct {
	clock     Clock
	condition Condition

	onRetry     OnRetryFunc
	onSuccess   OnSuccessFunc
	onExhausted OnExhaustedFunc
}

func defaultConfig() config {
	return config{
		clock:     realClock{},
		condition: alwaysRetry{},
	}
}

// alwaysRetry is the condition used when none is supplied.
type alwaysRetry struct{}

func (alwaysRetry) ShouldRetry(error) bool {
	return true
}

// Option configures a retry session or policy.
type Option func(*config)

// WithClock sets the clock used to wait between attempts. Useful for
// testing.
func WithClock(clock Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithCondition sets the condition consulted after each failed attempt.
func WithCondition(cond Condition) Option {
	return func(c *config) {
		c.condition = cond
	}
}

// If sets the retry condition from a plain predicate.
func If(cond ConditionFunc) Option {
	return WithCondition(cond)
}

// IfNot retries only the errors the predicate does not match. Equivalent to
// If(Not(cond)).
func IfNot(cond ConditionFunc) Option {
	return If(Not(cond))
}

// Not inverts a predicate.
func Not(cond ConditionFunc) ConditionFunc {
	return func(err error) bool {
		return !cond(err)
	}
}

// OnRetry sets a hook that is called before each retry sleep.
func OnRetry(fn OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}

// OnSuccess sets a hook that is called when an attempt succeeds.
func OnSuccess(fn OnSuccessFunc) Option {
	return func(c *config) {
		c.onSuccess = fn
	}
}

// OnExhausted sets a hook that is called when the strategy is exhausted.
// A failure the condition rejects terminates the session without firing
// the hook.
func OnExhausted(fn OnExhaustedFunc) Option {
	return func(c *config) {
		c.onExhausted = fn
	}
}
