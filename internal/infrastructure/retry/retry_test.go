package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastConfig keeps test retries near-instant.
func fastConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
		JitterFactor: 0,
	}
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		return nil
	}, fastConfig())

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, fastConfig())

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	wantErr := errors.New("persistent failure")
	calls := 0

	err := Do(context.Background(), func() error {
		calls++
		return wantErr
	}, fastConfig())

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 3, calls)
}

func TestDo_RetryIfStopsOnNonRetryable(t *testing.T) {
	retryable := errors.New("retryable")
	permanent := errors.New("permanent")

	cfg := fastConfig()
	cfg.RetryIf = func(err error) bool {
		return errors.Is(err, retryable)
	}

	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		return permanent
	}, cfg)

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Do(ctx, func() error {
		calls++
		return nil
	}, fastConfig())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}

func TestDo_ContextCancelledBetweenAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := fastConfig()
	cfg.InitialDelay = 50 * time.Millisecond
	cfg.MaxDelay = 50 * time.Millisecond

	calls := 0
	err := Do(ctx, func() error {
		calls++
		cancel()
		return errors.New("transient")
	}, cfg)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDoWithResult_ReturnsValue(t *testing.T) {
	calls := 0
	result, err := DoWithResult(context.Background(), func() (string, error) {
		calls++
		if calls < 2 {
			return "", errors.New("transient")
		}
		return "offers", nil
	}, fastConfig())

	require.NoError(t, err)
	assert.Equal(t, "offers", result)
	assert.Equal(t, 2, calls)
}

func TestDoWithResult_ZeroMaxAttemptsRunsOnce(t *testing.T) {
	cfg := fastConfig()
	cfg.MaxAttempts = 0

	calls := 0
	_, err := DoWithResult(context.Background(), func() (int, error) {
		calls++
		return 0, errors.New("failure")
	}, cfg)

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestCalculateSleepTime(t *testing.T) {
	t.Run("caps at max delay", func(t *testing.T) {
		got := calculateSleepTime(10*time.Second, time.Second, 0)
		assert.Equal(t, time.Second, got)
	})

	t.Run("jitter stays within factor", func(t *testing.T) {
		base := 100 * time.Millisecond
		for i := 0; i < 20; i++ {
			got := calculateSleepTime(base, time.Second, 0.5)
			assert.GreaterOrEqual(t, got, base)
			assert.LessOrEqual(t, got, base+base/2)
		}
	})
}
