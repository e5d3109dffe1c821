// SPDX-License-Identifier: GPL-2.0-or-later

package window

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"gocube/input"
	kc "gocube/keycode"
)

func TestScancodeToKey(t *testing.T) {
	tests := []struct {
		s    sdl.Scancode
		want kc.KeyCode
	}{
		{sdl.SCANCODE_A, 'a'},
		{sdl.SCANCODE_W, 'w'},
		{sdl.SCANCODE_Z, 'z'},
		{sdl.SCANCODE_1, '1'},
		{sdl.SCANCODE_9, '9'},
		{sdl.SCANCODE_0, '0'},
		{sdl.SCANCODE_F1, kc.F1},
		{sdl.SCANCODE_F12, kc.F12},
		{sdl.SCANCODE_LSHIFT, kc.SHIFT},
		{sdl.SCANCODE_RSHIFT, kc.SHIFT},
		{sdl.SCANCODE_SPACE, kc.SPACE},
		{sdl.SCANCODE_ESCAPE, kc.ESCAPE},
		{sdl.SCANCODE_UP, kc.UPARROW},
		{sdl.SCANCODE_DOWN, kc.DOWNARROW},
		{sdl.SCANCODE_CAPSLOCK, kc.NONE},
	}
	for _, tt := range tests {
		if got := scancodeToKey(tt.s); got != tt.want {
			t.Errorf("scancodeToKey(%d) = %v; want %v", tt.s, got, tt.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   sdl.Event
		want input.Event
		ok   bool
	}{
		{"quit", &sdl.QuitEvent{}, input.Quit{}, true},
		{"keydown", &sdl.KeyboardEvent{State: sdl.PRESSED, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W}}, input.Key{Code: 'w', Down: true}, true},
		{"keyup", &sdl.KeyboardEvent{State: sdl.RELEASED, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F12}}, input.Key{Code: kc.F12}, true},
		{"unknown key", &sdl.KeyboardEvent{State: sdl.PRESSED, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_CAPSLOCK}}, nil, false},
		{"motion", &sdl.MouseMotionEvent{XRel: 3, YRel: -4}, input.MouseMotion{DX: 3, DY: -4}, true},
		{"wheel", &sdl.MouseWheelEvent{Y: 1}, input.MouseWheel{DY: 1}, true},
		{"flipped wheel", &sdl.MouseWheelEvent{Y: 1, Direction: sdl.MOUSEWHEEL_FLIPPED}, input.MouseWheel{DY: -1}, true},
		{"horizontal wheel", &sdl.MouseWheelEvent{X: 1}, nil, false},
		{"resize", &sdl.WindowEvent{Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 800, Data2: 600}, input.Resize{Width: 800, Height: 600}, true},
		{"focus", &sdl.WindowEvent{Event: sdl.WINDOWEVENT_FOCUS_LOST}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("translate() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}
