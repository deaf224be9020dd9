package service

import "time"

// Clock returns the current time. Tests replace it with a fixed clock.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}
