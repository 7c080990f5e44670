// Package clock provides time abstractions for production and testing
package clock

import "time"

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock through the standard library
type SystemClock struct{}

// Now returns the current time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t according to c
func Since(c Clock, t time.Time) time.Duration {
	return c.Now().Sub(t)
}
