// SPDX-License-Identifier: GPL-2.0-or-later

// Package glh wraps graphics API objects in owned handles.
//
// Every call into the graphics API goes through a Backend. The enums in this
// file are the only vocabulary the rest of the program uses; translation to
// the native constants happens inside the Backend implementation.
package glh

type BufferType int

const (
	// ArrayBuffer holds vertex data.
	ArrayBuffer BufferType = iota
	// ElementArrayBuffer holds the indexes of the vertices to draw.
	ElementArrayBuffer
)

func (t BufferType) String() string {
	switch t {
	case ArrayBuffer:
		return "array buffer"
	case ElementArrayBuffer:
		return "element array buffer"
	}
	return "unknown buffer"
}

type Usage int

const (
	StaticDraw Usage = iota
	DynamicDraw
	StreamDraw
)

type ShaderKind int

const (
	VertexShader ShaderKind = iota
	FragmentShader
)

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return "unknown"
}

// Param selects the shader or program property to query.
type Param int

const (
	CompileStatus Param = iota
	LinkStatus
	InfoLogLength
)

type PixelFormat int

const (
	RGB PixelFormat = iota
	RGBA
)

type TexParam int

const (
	TextureWrapS TexParam = iota
	TextureWrapT
	TextureMinFilter
	TextureMagFilter
)

type TexValue int

const (
	Repeat TexValue = iota
	ClampToEdge
	Linear
	Nearest
)

type PolygonMode int

const (
	Point PolygonMode = iota
	Line
	Fill
)

// Backend is the graphics context. Implementations are not safe for
// concurrent use; all calls happen on the thread owning the context.
type Backend interface {
	GenVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)
	// VertexAttribPointer describes float attribute index of the bound
	// array buffer and enables it.
	VertexAttribPointer(index uint32, size, stride int32, offset uintptr)

	GenBuffer() uint32
	DeleteBuffer(id uint32)
	BindBuffer(t BufferType, id uint32)
	BufferData(t BufferType, data []byte, u Usage)

	GenTexture() uint32
	DeleteTexture(id uint32)
	ActiveTexture(unit int)
	BindTexture2D(id uint32)
	TexParameter(p TexParam, v TexValue)
	TexImage2D(f PixelFormat, width, height int32, pixels []byte)

	CreateShader(k ShaderKind) uint32
	ShaderSource(id uint32, src string)
	CompileShader(id uint32)
	GetShaderiv(id uint32, p Param) int32
	// GetShaderInfoLog fills buf and returns the number of bytes written.
	GetShaderInfoLog(id uint32, buf []byte) int32
	DeleteShader(id uint32)

	CreateProgram() uint32
	AttachShader(prog, shader uint32)
	LinkProgram(id uint32)
	GetProgramiv(id uint32, p Param) int32
	GetProgramInfoLog(id uint32, buf []byte) int32
	DeleteProgram(id uint32)
	UseProgram(id uint32)

	// GetUniformLocation returns -1 for names the program does not use.
	GetUniformLocation(prog uint32, name string) int32
	Uniform1i(loc int32, v0 int32)
	Uniform2i(loc int32, v0, v1 int32)
	Uniform3i(loc int32, v0, v1, v2 int32)
	Uniform4i(loc int32, v0, v1, v2, v3 int32)
	Uniform1f(loc int32, v0 float32)
	Uniform2f(loc int32, v0, v1 float32)
	Uniform3f(loc int32, v0, v1, v2 float32)
	Uniform4f(loc int32, v0, v1, v2, v3 float32)
	// UniformMatrix4fv uploads count column-major matrices stored back to back.
	UniformMatrix4fv(loc int32, count int32, m []float32)

	ClearColor(r, g, b, a float32)
	Clear()
	Viewport(x, y, width, height int32)
	PolygonMode(m PolygonMode)
	DrawTriangles(first, count int32)
	// ReadPixels returns the RGBA contents of the framebuffer, bottom row first.
	ReadPixels(x, y, width, height int32) []byte
}
