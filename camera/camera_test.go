// SPDX-License-Identifier: GPL-2.0-or-later

package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const e = 1e-5

// near compares with an absolute tolerance. ApproxEqualThreshold is
// relative and fails for components that should be zero.
func near(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < e
}

func TestNew(t *testing.T) {
	c := New()
	if !near(c.Front, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Front = %v; want (0,0,-1)", c.Front)
	}
	if c.Fov != 45 || c.Yaw != -90 || c.Pitch != 0 {
		t.Errorf("New() = %+v", c)
	}
}

func TestRotateZeroIsIdempotent(t *testing.T) {
	c := New()
	c.Rotate(13, -7)
	yaw, pitch, front := c.Yaw, c.Pitch, c.Front
	for i := 0; i < 100; i++ {
		c.Rotate(0, 0)
	}
	if c.Yaw != yaw || c.Pitch != pitch {
		t.Errorf("Rotate(0,0) changed yaw/pitch: %v/%v -> %v/%v", yaw, pitch, c.Yaw, c.Pitch)
	}
	if !near(c.Front, front) {
		t.Errorf("Rotate(0,0) changed front: %v -> %v", front, c.Front)
	}
	if l := c.Front.Len(); math32.Abs(l-1) > e {
		t.Errorf("|Front| = %v", l)
	}
}

func TestRotate(t *testing.T) {
	c := New()
	c.Rotate(900, 0)
	// yaw -90 + 90 = 0 looks along +x
	if !near(c.Front, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Front = %v; want (1,0,0)", c.Front)
	}
	c.Rotate(0, -300)
	if math32.Abs(c.Pitch-30) > e {
		t.Errorf("Pitch = %v; want 30", c.Pitch)
	}
	if c.Front.Y() <= 0 {
		t.Errorf("looking up but Front = %v", c.Front)
	}
}

func TestPitchClamp(t *testing.T) {
	c := New()
	for i := 0; i < 50; i++ {
		c.Rotate(0, -10000)
		if c.Pitch > MaxPitch {
			t.Fatalf("Pitch = %v > %v", c.Pitch, MaxPitch)
		}
	}
	if c.Pitch != MaxPitch {
		t.Errorf("Pitch = %v; want %v", c.Pitch, MaxPitch)
	}
	for i := 0; i < 50; i++ {
		c.Rotate(0, 10000)
		if c.Pitch < -MaxPitch {
			t.Fatalf("Pitch = %v < %v", c.Pitch, -MaxPitch)
		}
	}
	if c.Pitch != -MaxPitch {
		t.Errorf("Pitch = %v; want %v", c.Pitch, -MaxPitch)
	}
	if l := c.Front.Len(); math32.Abs(l-1) > e {
		t.Errorf("|Front| = %v", l)
	}
}

func TestZoomClamp(t *testing.T) {
	c := New()
	for i := 0; i < 100; i++ {
		c.Zoom(3)
		if c.Fov < MinFov || c.Fov > MaxFov {
			t.Fatalf("Fov = %v", c.Fov)
		}
	}
	if c.Fov != MinFov {
		t.Errorf("Fov = %v; want %v", c.Fov, MinFov)
	}
	for i := 0; i < 100; i++ {
		c.Zoom(-3)
		if c.Fov < MinFov || c.Fov > MaxFov {
			t.Fatalf("Fov = %v", c.Fov)
		}
	}
	if c.Fov != MaxFov {
		t.Errorf("Fov = %v; want %v", c.Fov, MaxFov)
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		d    Direction
		want mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{0, 0, 1}},
		{Backward, mgl32.Vec3{0, 0, 5}},
		{Left, mgl32.Vec3{-2, 0, 3}},
		{Right, mgl32.Vec3{2, 0, 3}},
		{Up, mgl32.Vec3{0, 2, 3}},
		{Down, mgl32.Vec3{0, -2, 3}},
	}
	for _, test := range tests {
		c := New()
		c.Translate(test.d, 2)
		if !near(c.Position, test.want) {
			t.Errorf("Translate(%v, 2) = %v; want %v", test.d, c.Position, test.want)
		}
	}
}

func TestView(t *testing.T) {
	c := New()
	v := c.View()
	// the camera position maps to the origin of view space
	p := v.Mul4x1(c.Position.Vec4(1))
	if !near(p.Vec3(), mgl32.Vec3{}) {
		t.Errorf("view * position = %v", p)
	}
	// a point in front of the camera ends up on the negative z axis
	q := v.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !near(q.Vec3(), mgl32.Vec3{0, 0, -3}) {
		t.Errorf("view * origin = %v", q)
	}
}

func TestProjectionFollowsFov(t *testing.T) {
	c := New()
	wide := c.Projection(16.0 / 9.0)
	c.Zoom(20)
	narrow := c.Projection(16.0 / 9.0)
	// [5] is 1/tan(fov/2)
	if narrow[5] <= wide[5] {
		t.Errorf("zooming in did not magnify: %v <= %v", narrow[5], wide[5])
	}
	want := 1 / math32.Tan(mgl32.DegToRad(45)/2)
	if math32.Abs(wide[5]-want) > e {
		t.Errorf("projection[5] = %v; want %v", wide[5], want)
	}
}
