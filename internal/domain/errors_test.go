package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpstreamError(t *testing.T) {
	tests := []struct {
		name          string
		operation     string
		statusCode    int
		underlyingErr error
		wantContains  []string
		wantRetryable bool
	}{
		{
			name:          "error message includes operation and underlying error",
			operation:     "flights/search",
			statusCode:    0,
			underlyingErr: errors.New("connection refused"),
			wantContains:  []string{"flights/search", "connection refused"},
			wantRetryable: false,
		},
		{
			name:          "error message includes status code when present",
			operation:     "booking/flight-order",
			statusCode:    502,
			underlyingErr: errors.New("bad gateway"),
			wantContains:  []string{"booking/flight-order", "502", "bad gateway"},
			wantRetryable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewUpstreamError(tt.operation, tt.statusCode, tt.underlyingErr)

			for _, want := range tt.wantContains {
				assert.Contains(t, err.Error(), want)
			}

			assert.True(t, errors.Is(err, tt.underlyingErr))
			assert.Equal(t, tt.wantRetryable, err.Retryable)
		})
	}
}

func TestNewRetryableUpstreamError(t *testing.T) {
	underlying := errors.New("temporary network failure")
	err := NewRetryableUpstreamError("flights/search", 503, underlying)

	assert.Contains(t, err.Error(), "flights/search")
	assert.True(t, errors.Is(err, underlying))
	assert.True(t, err.Retryable)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "retryable upstream error",
			err:  NewRetryableUpstreamError("flights/search", 503, errors.New("unavailable")),
			want: true,
		},
		{
			name: "non-retryable upstream error",
			err:  NewUpstreamError("pricing/flights/confirm", 400, errors.New("bad offer")),
			want: false,
		},
		{
			name: "wrapped retryable error still detected",
			err:  fmt.Errorf("search failed: %w", NewRetryableUpstreamError("flights/search", 0, errors.New("reset"))),
			want: true,
		},
		{
			name: "plain error is not retryable",
			err:  errors.New("some error"),
			want: false,
		},
		{
			name: "nil error is not retryable",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidRequest,
		ErrUpstreamUnavailable,
		ErrUpstreamTimeout,
		ErrBookingNotFound,
		ErrSearchSuperseded,
		ErrIncompleteTraveler,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
		}
	}
}
