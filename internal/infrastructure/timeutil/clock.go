package timeutil

import (
	"sync"
	"time"
)

// Clock abstracts the current time so booking timestamps can be pinned in
// tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// NewRealClock returns a Clock backed by the system time.
func NewRealClock() *RealClock {
	return &RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a manually advanced Clock for tests. Safe for concurrent use;
// integration tests share one instance across request goroutines.
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewMockClock returns a MockClock pinned at t.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set pins the clock at t.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
