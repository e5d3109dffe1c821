// SPDX-License-Identifier: GPL-2.0-or-later

package qtime

import (
	"testing"
	"time"
)

func TestClockTick(t *testing.T) {
	base := time.Unix(100, 0)
	steps := []time.Duration{0, 16 * time.Millisecond, 16*time.Millisecond + 900*time.Microsecond, 50 * time.Millisecond}
	i := 0
	c := newClock(func() time.Time {
		r := base.Add(steps[i])
		if i < len(steps)-1 {
			i++
		}
		return r
	})
	tests := []float32{16, 0, 33}
	for _, want := range tests {
		if got := c.Tick(); got != want {
			t.Errorf("Tick() = %v; want %v", got, want)
		}
	}
}

func TestQTimeMonotonic(t *testing.T) {
	a := QTime()
	b := QTime()
	if b < a {
		t.Errorf("QTime went backwards: %v < %v", b, a)
	}
}
