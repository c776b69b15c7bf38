// Package timeutil provides the clock abstraction and calendar-date helpers used by the API.
package timeutil

import (
	"sync"
	"time"
)

// Clock reports the current instant. The health endpoint reads it for its
// timestamp and uptime so tests can pin both.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// NewRealClock returns a Clock backed by the system time.
func NewRealClock() Clock {
	return ClockFunc(time.Now)
}

// MockClock is a manually driven Clock, safe for concurrent readers.
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewMockClock returns a MockClock stopped at t.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Uptime returns the seconds elapsed on clock since startedAt.
func Uptime(clock Clock, startedAt time.Time) float64 {
	return clock.Now().Sub(startedAt).Seconds()
}
