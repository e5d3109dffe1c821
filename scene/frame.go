// SPDX-License-Identifier: GPL-2.0-or-later

// Package scene holds everything that changes from frame to frame.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"gocube/camera"
	"gocube/input"
	kc "gocube/keycode"
	"gocube/math"
)

// Speeds are per millisecond.
type Speeds struct {
	Camera float32
	Mix    float32
	Spin   float32
}

func DefaultSpeeds() Speeds {
	return Speeds{
		Camera: 0.01,
		Mix:    0.005,
		Spin:   0.0008,
	}
}

// FrameState is threaded through the frame loop. Apply feeds it the events
// of a frame, Step advances it by the frame time.
type FrameState struct {
	Camera   *camera.Camera
	Keys     *input.State
	Bindings input.Bindings
	Speeds   Speeds

	// Mix blends between the two textures, 0 to 1.
	Mix float32
	// Angle is the spin of the cubes in radians.
	Angle float32

	Width, Height int32

	// Set by Apply, reset by the consumer.
	Quit       bool
	Resized    bool
	Screenshot bool
	Wireframe  bool
}

func NewFrameState(width, height int32, b input.Bindings) *FrameState {
	return &FrameState{
		Camera:   camera.New(),
		Keys:     input.NewState(),
		Bindings: b,
		Speeds:   DefaultSpeeds(),
		Width:    width,
		Height:   height,
	}
}

func (s *FrameState) Apply(ev input.Event) {
	switch e := ev.(type) {
	case input.Quit:
		s.Quit = true
	case input.Resize:
		if e.Width > 0 && e.Height > 0 {
			s.Width, s.Height = e.Width, e.Height
			s.Resized = true
		}
	case input.MouseMotion:
		s.Camera.Rotate(float32(e.DX), float32(e.DY))
	case input.MouseWheel:
		s.Camera.Zoom(float32(e.DY))
	case input.Key:
		if !e.Down {
			s.Keys.Release(e.Code)
			return
		}
		// key repeat sends more downs, only the first one triggers
		if a := s.Bindings.Lookup(e.Code); !a.Continuous() && !s.Keys.Pressed(e.Code) {
			s.trigger(a)
		}
		s.Keys.Press(e.Code)
	}
}

func (s *FrameState) trigger(a input.Action) {
	switch a {
	case input.Screenshot:
		s.Screenshot = true
	case input.Exit:
		s.Quit = true
	case input.Wireframe:
		s.Wireframe = !s.Wireframe
	}
}

// Step applies held keys for dt milliseconds.
func (s *FrameState) Step(dt float32) {
	camSpeed := s.Speeds.Camera * dt
	s.Keys.Each(func(k kc.KeyCode) {
		switch s.Bindings.Lookup(k) {
		case input.MixUp:
			s.Mix += s.Speeds.Mix * dt
		case input.MixDown:
			s.Mix -= s.Speeds.Mix * dt
		case input.Forward:
			s.Camera.Translate(camera.Forward, camSpeed)
		case input.Back:
			s.Camera.Translate(camera.Backward, camSpeed)
		case input.MoveLeft:
			s.Camera.Translate(camera.Left, camSpeed)
		case input.MoveRight:
			s.Camera.Translate(camera.Right, camSpeed)
		case input.Up:
			s.Camera.Translate(camera.Up, camSpeed)
		case input.Down:
			s.Camera.Translate(camera.Down, camSpeed)
		}
	})
	s.Mix = math.Clamp(0, s.Mix, 1)
	s.Angle += s.Speeds.Spin * dt
}

func (s *FrameState) Aspect() float32 {
	if s.Height == 0 {
		return 1
	}
	return float32(s.Width) / float32(s.Height)
}

func (s *FrameState) View() mgl32.Mat4 {
	return s.Camera.View()
}

func (s *FrameState) Projection() mgl32.Mat4 {
	return s.Camera.Projection(s.Aspect())
}
