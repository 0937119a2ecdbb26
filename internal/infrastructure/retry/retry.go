// Package retry runs operations with exponential backoff. Retries are only
// used for idempotent upstream reads; booking submission is never retried
// automatically.
package retry

import (
	"context"
	"math/rand"
	"time"
)

// Config controls the backoff schedule for a retried operation.
type Config struct {
	// MaxAttempts bounds the total number of calls, including the first.
	// Values below one run the operation exactly once.
	MaxAttempts int

	// InitialDelay is the wait before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the wait between retries after backoff growth.
	MaxDelay time.Duration

	// Multiplier grows the delay after each failed attempt.
	Multiplier float64

	// JitterFactor adds up to this fraction of the delay as random jitter,
	// spreading out retries from concurrent callers.
	JitterFactor float64

	// RetryIf decides whether a given error is worth retrying. A nil
	// predicate retries every error.
	RetryIf func(error) bool
}

// UpstreamConfig is the schedule used for reads against the flight API.
var UpstreamConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// Do runs fn until it succeeds, the attempts are exhausted, or the context
// is cancelled. The last error is returned on failure.
func Do(ctx context.Context, fn func() error, cfg Config) error {
	_, err := DoWithResult(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	}, cfg)
	return err
}

// DoWithResult is Do for operations that produce a value.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var zero T
	delay := cfg.InitialDelay

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		if cfg.RetryIf != nil && !cfg.RetryIf(err) {
			return zero, err
		}
		if attempt >= attempts {
			return zero, err
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(calculateSleepTime(delay, cfg.MaxDelay, cfg.JitterFactor)):
		}
		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}
}

// calculateSleepTime applies jitter to the delay and caps it at maxDelay.
func calculateSleepTime(delay, maxDelay time.Duration, jitterFactor float64) time.Duration {
	sleep := delay + time.Duration(rand.Float64()*float64(delay)*jitterFactor)
	if sleep > maxDelay {
		return maxDelay
	}
	return sleep
}
