// SPDX-License-Identifier: GPL-2.0-or-later

package qtime

import (
	"time"
)

var (
	startTime = time.Now()
)

// QTime returns the time since program start.
func QTime() time.Duration {
	return time.Now().Sub(startTime)
}

// Clock measures the wall clock time between frame starts.
type Clock struct {
	prev time.Time
	now  func() time.Time
}

func NewClock() *Clock {
	return newClock(time.Now)
}

func newClock(now func() time.Time) *Clock {
	return &Clock{
		prev: now(),
		now:  now,
	}
}

// Tick starts a new frame and returns the whole milliseconds elapsed since
// the previous one.
func (c *Clock) Tick() float32 {
	n := c.now()
	d := n.Sub(c.prev)
	c.prev = n
	return float32(d.Milliseconds())
}
