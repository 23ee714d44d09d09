package calendar

import "time"

// TimeProvider is the clock the calendar reads "today" from
type TimeProvider interface {
	Now() time.Time
}

// SystemTimeProvider reads the host clock in local time
type SystemTimeProvider struct{}

// NewSystemTimeProvider creates a host clock provider
func NewSystemTimeProvider() *SystemTimeProvider {
	return &SystemTimeProvider{}
}

// Now returns the current local time
func (p *SystemTimeProvider) Now() time.Time {
	return time.Now()
}
