// SPDX-License-Identifier: GPL-2.0-or-later

package input

import (
	kc "gocube/keycode"
)

// Event is one discrete occurrence reported by the window system.
type Event interface {
	isEvent()
}

type Quit struct{}

type Resize struct {
	Width, Height int32
}

// MouseMotion carries relative motion in pixels.
type MouseMotion struct {
	DX, DY int32
}

type MouseWheel struct {
	DY int32
}

type Key struct {
	Code kc.KeyCode
	Down bool
}

func (Quit) isEvent()        {}
func (Resize) isEvent()      {}
func (MouseMotion) isEvent() {}
func (MouseWheel) isEvent()  {}
func (Key) isEvent()         {}
