// Package clock provides time utilities for the application
package clock

import "time"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current local time; roll stamps are wall-clock HH:MM:SS.
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed always reports the same instant.
type Fixed struct {
	At time.Time
}

// Now returns the fixed instant
func (c Fixed) Now() time.Time {
	return c.At
}
