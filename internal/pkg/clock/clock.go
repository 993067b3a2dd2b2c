// Package clock abstracts time.Now so usecases that stamp rows can be
// tested against a pinned instant.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock reports a pinned instant until moved.
type FixedClock struct {
	now time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{now: t}
}

func (c *FixedClock) Now() time.Time {
	return c.now
}

func (c *FixedClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
