// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"testing"
	"time"

	"gocube/config"
	"gocube/input"
	kc "gocube/keycode"
)

func TestNewFrameState(t *testing.T) {
	c := config.Default()
	c.Camera.Fov = 30
	c.Speeds.Mix = 0.5
	c.Bindings = map[string]string{"forward": "i"}
	s, err := newFrameState(c, 640, 480)
	if err != nil {
		t.Fatal(err)
	}
	if s.Camera.Fov != 30 || s.Speeds.Mix != 0.5 {
		t.Errorf("config not applied: fov %v, speeds %+v", s.Camera.Fov, s.Speeds)
	}
	if s.Bindings.Lookup('i') != input.Forward || s.Bindings.Lookup('w') != input.None {
		t.Errorf("bindings = %v", s.Bindings)
	}
	if s.Bindings.Lookup(kc.F12) != input.Screenshot {
		t.Errorf("default bindings lost: %v", s.Bindings)
	}

	c.Bindings = map[string]string{"forward": "nokey"}
	if _, err := newFrameState(c, 640, 480); err == nil {
		t.Errorf("bad binding accepted")
	}
}

func TestSwapInterval(t *testing.T) {
	c := config.Default()
	if got := swapInterval(c); got != 1 {
		t.Errorf("swapInterval() = %d; want 1", got)
	}
	c.Window.VSync = false
	if got := swapInterval(c); got != 0 {
		t.Errorf("swapInterval() = %d; want 0", got)
	}
}

func TestFPSCounter(t *testing.T) {
	f := &fpsCounter{title: "gocube"}
	for i := 1; i < 60; i++ {
		if _, ok := f.frame(time.Duration(i) * time.Second / 60); ok {
			t.Fatalf("title after %d frames", i)
		}
	}
	title, ok := f.frame(time.Second)
	if !ok || title != "gocube - 60 fps" {
		t.Errorf("frame() = %q, %v", title, ok)
	}
	if _, ok := f.frame(time.Second + time.Millisecond); ok {
		t.Errorf("counter not reset")
	}
}
