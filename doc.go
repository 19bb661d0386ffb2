// Package retry re-attempts fallible operations under a pluggable backoff
// strategy.
//
// retry provides:
//
//   - Lazy Strategies: stateful delay sequences (Constant, Exponential,
//     Fibonacci, FromDurations) that are pulled one delay at a time
//   - Composable Decorators: WithJitter, WithMaxRetries, WithCap and
//     WithDeadline stack in any order, each preserving the exhaustion
//     contract of the strategy it wraps
//   - Conditions: a predicate over the failure decides retry eligibility
//   - Injectable Clock: control time in tests without real sleeps
//   - Lifecycle Hooks: OnRetry, OnSuccess, OnExhausted for observability
//
// # Quick Start
//
// Retrying an operation that produces a value:
//
//	strategy := retry.WithMaxRetries(3, retry.WithJitter(retry.Exponential(10)))
//
//	user, err := retry.Do(ctx, strategy, retry.ActionFunc[*User](func(ctx context.Context) (*User, error) {
//	    return client.FetchUser(ctx, id)
//	}))
//
// Creating a reusable policy for dependency injection:
//
//	// At wire-up time (e.g., in main or a DI container)
//	policy := retry.New(func() retry.Strategy {
//	    return retry.WithMaxRetries(5, retry.Constant(100*time.Millisecond))
//	})
//
//	// At call site
//	err := policy.Do(ctx, func(ctx context.Context) error {
//	    return client.Call(ctx)
//	})
//
// # Strategies
//
// A Strategy yields the delay before each retry; when it is exhausted the
// session gives up and the last failure is returned. Strategies carry
// session state (the current power, the Fibonacci pair, retry counters,
// deadline clocks), so a session consumes its strategy. To reuse retry
// behaviour across calls, hand a StrategyFactory to a Policy and a fresh
// strategy is built per call.
//
//	retry.Constant(100*time.Millisecond)      // 100ms, 100ms, 100ms, ...
//	retry.Exponential(10)                     // 10ms, 100ms, 1s, ... (base^n)
//	retry.Fibonacci(10)                       // 10ms, 10ms, 20ms, 30ms, 50ms, ...
//	retry.NoRetry()                           // single attempt, no retries
//	retry.FromDurations(a, b, c)              // exactly a, b, c, then stop
//
// Exponential and Fibonacci grow without bound, saturating at the maximum
// representable delay instead of overflowing; bound them with decorators:
//
//	retry.WithMaxRetries(3, s)      // at most 3 retries
//	retry.WithCap(10*time.Second, s) // no delay above 10s
//	retry.WithJitter(s)             // scale each delay by a random [0, 1) draw
//	retry.WithDeadline(time.Minute, s) // stop once a minute has passed
//
// # Errors
//
// A failed session returns one of two error kinds. *OperationError wraps
// the last attempt's own failure, surfaced verbatim, whether the condition
// rejected it or the strategy ran out. *TimerError wraps a failure of the
// clock while waiting between attempts (typically context cancellation)
// and is never retried.
//
//	var opErr *retry.OperationError
//	if errors.As(err, &opErr) {
//	    // opErr.Err is the failure from the final attempt
//	}
//
// # Conditions
//
// By default every failure is retried until the strategy is exhausted. Use
// If to retry selectively:
//
//	retry.Do(ctx, strategy, action, retry.If(func(err error) bool {
//	    return errors.Is(err, ErrTransient)
//	}))
//
// Or use Stop inside the action to mark a single failure terminal:
//
//	func fetchUser(ctx context.Context, id string) (*User, error) {
//	    user, err := db.Get(ctx, id)
//	    if errors.Is(err, sql.ErrNoRows) {
//	        return nil, retry.Stop(ErrNotFound) // don't retry "not found"
//	    }
//	    return user, err // other errors will be retried
//	}
//
// # Cancellation
//
// The session runs on the caller's goroutine and stops when the context is
// cancelled: a cancelled sleep surfaces as *TimerError, and no further
// attempts are made. Run retry.Do in its own goroutine to get a
// non-blocking handle.
package retry
