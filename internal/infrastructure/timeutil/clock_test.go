package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}

func TestMockClock(t *testing.T) {
	fixed := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	clock := NewMockClock(fixed)

	assert.Equal(t, fixed, clock.Now())

	clock.Advance(90 * time.Minute)
	assert.Equal(t, fixed.Add(90*time.Minute), clock.Now())

	reset := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	clock.Set(reset)
	assert.Equal(t, reset, clock.Now())
}
