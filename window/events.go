// SPDX-License-Identifier: GPL-2.0-or-later

package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"gocube/input"
	kc "gocube/keycode"
)

// PollEvents drains the SDL event queue.
func PollEvents() []input.Event {
	var evs []input.Event
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := translate(event); ok {
			evs = append(evs, e)
		}
	}
	return evs
}

func translate(event sdl.Event) (input.Event, bool) {
	switch t := event.(type) {
	case *sdl.QuitEvent:
		return input.Quit{}, true
	case *sdl.WindowEvent:
		if t.Event != sdl.WINDOWEVENT_SIZE_CHANGED {
			return nil, false
		}
		w, h := t.Data1, t.Data2
		if window != nil {
			w, h = Size()
		}
		return input.Resize{Width: w, Height: h}, true
	case *sdl.KeyboardEvent:
		k := scancodeToKey(t.Keysym.Scancode)
		if k == kc.NONE {
			return nil, false
		}
		return input.Key{Code: k, Down: t.State == sdl.PRESSED}, true
	case *sdl.MouseMotionEvent:
		return input.MouseMotion{DX: t.XRel, DY: t.YRel}, true
	case *sdl.MouseWheelEvent:
		dy := t.Y
		if t.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dy = -dy
		}
		if dy == 0 {
			return nil, false
		}
		return input.MouseWheel{DY: dy}, true
	}
	return nil, false
}

func scancodeToKey(s sdl.Scancode) kc.KeyCode {
	// We want the key and not what it is mapped to. So use Scancode
	switch {
	case s >= sdl.SCANCODE_A && s <= sdl.SCANCODE_Z:
		return kc.KeyCode('a' + (s - sdl.SCANCODE_A))
	case s >= sdl.SCANCODE_1 && s <= sdl.SCANCODE_9:
		return kc.KeyCode('1' + (s - sdl.SCANCODE_1))
	case s >= sdl.SCANCODE_F1 && s <= sdl.SCANCODE_F12:
		return kc.F1 + kc.KeyCode(s-sdl.SCANCODE_F1)
	}
	switch s {
	case sdl.SCANCODE_0:
		return '0'
	case sdl.SCANCODE_TAB:
		return kc.TAB
	case sdl.SCANCODE_RETURN, sdl.SCANCODE_RETURN2:
		return kc.ENTER
	case sdl.SCANCODE_ESCAPE:
		return kc.ESCAPE
	case sdl.SCANCODE_SPACE:
		return kc.SPACE

	case sdl.SCANCODE_MINUS:
		return '-'
	case sdl.SCANCODE_EQUALS:
		return '='
	case sdl.SCANCODE_LEFTBRACKET:
		return '['
	case sdl.SCANCODE_RIGHTBRACKET:
		return ']'
	case sdl.SCANCODE_BACKSLASH, sdl.SCANCODE_NONUSBACKSLASH:
		return '\\'
	case sdl.SCANCODE_SEMICOLON:
		return ';'
	case sdl.SCANCODE_APOSTROPHE:
		return '\''
	case sdl.SCANCODE_GRAVE:
		return '`'
	case sdl.SCANCODE_COMMA:
		return ','
	case sdl.SCANCODE_PERIOD:
		return '.'
	case sdl.SCANCODE_SLASH:
		return '/'

	case sdl.SCANCODE_BACKSPACE:
		return kc.BACKSPACE
	case sdl.SCANCODE_UP:
		return kc.UPARROW
	case sdl.SCANCODE_DOWN:
		return kc.DOWNARROW
	case sdl.SCANCODE_LEFT:
		return kc.LEFTARROW
	case sdl.SCANCODE_RIGHT:
		return kc.RIGHTARROW

	case sdl.SCANCODE_LALT, sdl.SCANCODE_RALT:
		return kc.ALT
	case sdl.SCANCODE_LCTRL, sdl.SCANCODE_RCTRL:
		return kc.CTRL
	case sdl.SCANCODE_LSHIFT, sdl.SCANCODE_RSHIFT:
		return kc.SHIFT

	case sdl.SCANCODE_INSERT:
		return kc.INS
	case sdl.SCANCODE_DELETE:
		return kc.DEL
	case sdl.SCANCODE_PAGEDOWN:
		return kc.PGDN
	case sdl.SCANCODE_PAGEUP:
		return kc.PGUP
	case sdl.SCANCODE_HOME:
		return kc.HOME
	case sdl.SCANCODE_END:
		return kc.END
	case sdl.SCANCODE_PAUSE:
		return kc.PAUSE
	}
	return kc.NONE
}
