package retry_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	retry "github.com/srijs/go-retry"
)

func TestWithMaxRetries(t *testing.T) {
	s := retry.WithMaxRetries(2, retry.Constant(time.Second))

	assert.Equal(t, time.Second, next(t, s))
	assert.Equal(t, time.Second, next(t, s))
	exhausted(t, s)
	exhausted(t, s)
}

func TestWithMaxRetries_innerExhaustsFirst(t *testing.T) {
	s := retry.WithMaxRetries(5, retry.FromDurations(10*time.Millisecond))

	assert.Equal(t, 10*time.Millisecond, next(t, s))
	exhausted(t, s)
}

func TestWithMaxRetries_zero(t *testing.T) {
	s := retry.WithMaxRetries(0, retry.Constant(time.Second))

	exhausted(t, s)
}

func TestWithCap(t *testing.T) {
	limit := 700 * time.Millisecond
	s := retry.WithCap(limit, retry.Constant(time.Second))

	assert.Equal(t, limit, next(t, s))
	assert.Equal(t, limit, next(t, s))
}

func TestWithCap_belowCapUnchanged(t *testing.T) {
	s := retry.WithCap(time.Second, retry.Exponential(10))

	assert.Equal(t, 10*time.Millisecond, next(t, s))
	assert.Equal(t, 100*time.Millisecond, next(t, s))
	assert.Equal(t, time.Second, next(t, s))
	// 10s exceeds the cap.
	assert.Equal(t, time.Second, next(t, s))
}

func TestWithCap_propagatesExhaustion(t *testing.T) {
	s := retry.WithCap(time.Second, retry.NoRetry())

	exhausted(t, s)
}

func TestWithJitter_neverExceedsInner(t *testing.T) {
	s := retry.WithJitter(retry.Constant(100 * time.Millisecond))

	for range 100 {
		d := next(t, s)
		assert.LessOrEqual(t, d, 100*time.Millisecond)
		assert.GreaterOrEqual(t, d, time.Duration(0))
	}
}

func TestWithJitter_scalesSecondComponents(t *testing.T) {
	// Delays above a second must jitter the whole value, not just the
	// sub-second remainder.
	s := retry.WithJitter(retry.Constant(10 * time.Second))

	var belowOneSecond int
	for range 200 {
		if next(t, s) < time.Second {
			belowOneSecond++
		}
	}
	assert.Positive(t, belowOneSecond)
}

func TestWithJitter_propagatesExhaustion(t *testing.T) {
	s := retry.WithJitter(retry.NoRetry())

	exhausted(t, s)
}

func TestWithJitterSource_deterministic(t *testing.T) {
	a := retry.WithJitterSource(retry.Exponential(10), rand.New(rand.NewPCG(1, 2)))
	b := retry.WithJitterSource(retry.Exponential(10), rand.New(rand.NewPCG(1, 2)))

	for range 20 {
		assert.Equal(t, next(t, a), next(t, b))
	}
}

func TestWithDeadlineClock(t *testing.T) {
	clock := newFakeClock()
	s := retry.WithDeadlineClock(50*time.Millisecond, retry.Constant(10*time.Millisecond), clock)

	assert.Equal(t, 10*time.Millisecond, next(t, s))

	clock.Advance(15 * time.Millisecond)
	assert.Equal(t, 10*time.Millisecond, next(t, s))

	clock.Advance(100 * time.Millisecond)
	exhausted(t, s)
	exhausted(t, s)
}

func TestWithDeadlineClock_innerExhaustsFirst(t *testing.T) {
	clock := newFakeClock()
	s := retry.WithDeadlineClock(time.Minute, retry.NoRetry(), clock)

	exhausted(t, s)
}

func TestComposedStrategy(t *testing.T) {
	// Exponential, capped at 1s, limited to 5 retries.
	s := retry.WithMaxRetries(5, retry.WithCap(time.Second, retry.Exponential(10)))

	assert.Equal(t, 10*time.Millisecond, next(t, s))
	assert.Equal(t, 100*time.Millisecond, next(t, s))
	assert.Equal(t, time.Second, next(t, s))
	assert.Equal(t, time.Second, next(t, s))
	assert.Equal(t, time.Second, next(t, s))
	exhausted(t, s)
}
