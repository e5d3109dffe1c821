// SPDX-License-Identifier: GPL-2.0-or-later

package scene

import (
	"encoding/binary"
	gmath "math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// position xyz followed by texture coordinate uv
	FloatsPerVertex = 5
	VertexStride    = FloatsPerVertex * 4
	TexCoordOffset  = 3 * 4
	VertexCount     = 36
)

// CubeVertices is a unit cube around the origin, two triangles per face.
var CubeVertices = [VertexCount * FloatsPerVertex]float32{
	-0.5, -0.5, -0.5, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0,

	-0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,

	-0.5, 0.5, 0.5, 1.0, 0.0,
	-0.5, 0.5, -0.5, 1.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,
	-0.5, 0.5, 0.5, 1.0, 0.0,

	0.5, 0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0,

	-0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 1.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,

	-0.5, 0.5, -0.5, 0.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 0.0,
	-0.5, 0.5, -0.5, 0.0, 1.0,
}

// CubePositions places the drawn instances.
var CubePositions = [...]mgl32.Vec3{
	{0.0, 0.0, 0.0},
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}

var rotationAxis = mgl32.Vec3{1.0, 0.3, 0.5}.Normalize()

// ModelMatrix returns the transform of instance i at spin angle (radians).
// Every instance is offset by its index so they do not turn in lockstep.
func ModelMatrix(i int, angle float32) mgl32.Mat4 {
	p := CubePositions[i]
	return mgl32.Translate3D(p[0], p[1], p[2]).
		Mul4(mgl32.HomogRotate3D(angle+float32(i), rotationAxis))
}

// VertexBytes returns CubeVertices in the little endian layout the vertex
// buffer expects.
func VertexBytes() []byte {
	b := make([]byte, 0, len(CubeVertices)*4)
	for _, f := range CubeVertices {
		b = binary.LittleEndian.AppendUint32(b, gmath.Float32bits(f))
	}
	return b
}
