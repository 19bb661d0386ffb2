package retry

import (
	"context"
	"errors"
	"time"
)

// Func is the error-only action shape used with Policy.
type Func func(ctx context.Context) error

// Action is a retryable operation. Run is called once per attempt; each
// call starts an independent attempt and is awaited to completion before
// the engine decides whether to retry.
type Action[T any] interface {
	Run(ctx context.Context) (T, error)
}

// ActionFunc is an adapter that allows a function to be used as an Action.
type ActionFunc[T any] func(ctx context.Context) (T, error)

// Run implements Action.
func (f ActionFunc[T]) Run(ctx context.Context) (T, error) {
	return f(ctx)
}

// Condition decides, after a failed attempt, whether the failure is
// retryable. A Condition may carry state (for example a budget keyed on
// failure content); the engine consults it exactly once per failure.
type Condition interface {
	ShouldRetry(err error) bool
}

// ConditionFunc is an adapter that allows a function to be used as a
// Condition.
type ConditionFunc func(error) bool

// ShouldRetry implements Condition.
func (f ConditionFunc) ShouldRetry(err error) bool {
	return f(err)
}

// Do runs action, retrying failed attempts until one succeeds, the
// condition rejects a failure, or the strategy is exhausted. The strategy
// is consumed by the session; build a fresh one per call.
//
// The terminal error is an *OperationError wrapping the last attempt's
// failure, or a *TimerError if the clock failed while waiting between
// attempts. When no condition is supplied every failure is retryable.
func Do[T any](ctx context.Context, strategy Strategy, action Action[T], opts ...Option) (T, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return run(ctx, strategy, action, cfg)
}

// run drives the retry session. The session is always in one of two states,
// running an attempt or sleeping out a delay; each loop iteration performs
// one attempt and, unless the session terminates, one sleep.
func run[T any](ctx context.Context, strategy Strategy, action Action[T], cfg config) (T, error) {
	var zero T
	for attempt := 1; ; attempt++ {
		out, err := action.Run(ctx)
		if err == nil {
			if cfg.onSuccess != nil {
				cfg.onSuccess(ctx, attempt)
			}
			return out, nil
		}

		var stopped *stopError
		if errors.As(err, &stopped) {
			return zero, &OperationError{Err: stopped.Unwrap()}
		}

		if !cfg.condition.ShouldRetry(err) {
			return zero, &OperationError{Err: err}
		}

		delay, ok := strategy.Next()
		if !ok {
			if cfg.onExhausted != nil {
				cfg.onExhausted(ctx, attempt, err)
			}
			return zero, &OperationError{Err: err}
		}

		if cfg.onRetry != nil {
			cfg.onRetry(ctx, attempt, err, delay)
		}
		if serr := cfg.clock.Sleep(ctx, delay); serr != nil {
			return zero, &TimerError{Err: serr}
		}
	}
}

// Policy pairs a strategy factory with session defaults so retry behaviour
// can be wired up once and injected. Safe for concurrent use: every Do call
// builds its own Strategy, so session-scoped decorator state never leaks
// between calls.
type Policy struct {
	factory   StrategyFactory
	clock     Clock
	condition Condition

	onRetry     OnRetryFunc
	onSuccess   OnSuccessFunc
	onExhausted OnExhaustedFunc
}

// New creates a Policy. The factory is invoked once per Do call.
func New(factory StrategyFactory, opts ...Option) *Policy {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Policy{
		factory:     factory,
		clock:       cfg.clock,
		condition:   cfg.condition,
		onRetry:     cfg.onRetry,
		onSuccess:   cfg.onSuccess,
		onExhausted: cfg.onExhausted,
	}
}

// Never returns a policy that runs the action once and does not retry.
func Never() *Policy {
	return New(func() Strategy {
		return NoRetry()
	})
}

// Default returns a policy with sensible defaults: jittered exponential
// back-off from a 10ms base, capped at 10s, limited to 3 retries.
func Default() *Policy {
	return New(func() Strategy {
		return WithMaxRetries(3, WithCap(10*time.Second, WithJitter(Exponential(10))))
	})
}

// Do runs fn under this policy's strategy and defaults.
func (p *Policy) Do(ctx context.Context, fn Func, opts ...Option) error {
	cfg := config{
		clock:       p.clock,
		condition:   p.condition,
		onRetry:     p.onRetry,
		onSuccess:   p.onSuccess,
		onExhausted: p.onExhausted,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	action := ActionFunc[struct{}](func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	_, err := run(ctx, p.factory(), action, cfg)
	return err
}
