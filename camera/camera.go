// SPDX-License-Identifier: GPL-2.0-or-later

// Package camera implements a yaw/pitch fly camera.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"gocube/math"
)

const (
	MinFov     = 1
	MaxFov     = 45
	MaxPitch   = 89.9
	NearPlane  = 0.1
	FarPlane   = 100
	DefaultYaw = -90

	DefaultSensitivity = 0.1
)

type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// Camera angles are in degrees. Front is kept normalized and in sync with
// Yaw and Pitch.
type Camera struct {
	Position    mgl32.Vec3
	Front       mgl32.Vec3
	Up          mgl32.Vec3
	Yaw         float32
	Pitch       float32
	Fov         float32
	Sensitivity float32
}

// New returns a camera at (0,0,3) looking down the negative z axis.
func New() *Camera {
	c := &Camera{
		Position:    mgl32.Vec3{0, 0, 3},
		Up:          mgl32.Vec3{0, 1, 0},
		Yaw:         DefaultYaw,
		Pitch:       0,
		Fov:         MaxFov,
		Sensitivity: DefaultSensitivity,
	}
	c.Front = FrontVector(c.Yaw, c.Pitch)
	return c
}

// FrontVector returns the unit look direction for yaw and pitch.
func FrontVector(yaw, pitch float32) mgl32.Vec3 {
	sy, cy := math32.Sincos(mgl32.DegToRad(yaw))
	sp, cp := math32.Sincos(mgl32.DegToRad(pitch))
	return mgl32.Vec3{cy * cp, sp, sy * cp}.Normalize()
}

// Rotate applies a mouse motion. Screen y grows downwards, so moving the
// mouse down lowers the pitch.
func (c *Camera) Rotate(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch -= dy * c.Sensitivity
	c.Pitch = math.Clamp(-MaxPitch, c.Pitch, MaxPitch)
	c.Front = FrontVector(c.Yaw, c.Pitch)
}

// Zoom narrows the field of view for positive wheel motion.
func (c *Camera) Zoom(dy float32) {
	c.Fov = math.Clamp(MinFov, c.Fov-dy, MaxFov)
}

func (c *Camera) right() mgl32.Vec3 {
	return c.Front.Cross(c.Up).Normalize()
}

// Translate moves the camera by amount along d.
func (c *Camera) Translate(d Direction, amount float32) {
	var v mgl32.Vec3
	switch d {
	case Forward:
		v = c.Front
	case Backward:
		v = c.Front.Mul(-1)
	case Left:
		v = c.right().Mul(-1)
	case Right:
		v = c.right()
	case Up:
		v = c.Up
	case Down:
		v = c.Up.Mul(-1)
	}
	c.Position = c.Position.Add(v.Mul(amount))
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), aspect, NearPlane, FarPlane)
}
