// SPDX-License-Identifier: GPL-2.0-or-later

// Package glcore implements glh.Backend on an OpenGL 3.3 core context.
package glcore

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"gocube/glh"
)

// Init loads the GL function pointers. A context needs to be current.
func Init() error {
	return gl.Init()
}

// Version returns the GL_VERSION string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

type Backend struct{}

var _ glh.Backend = Backend{}

func bufferTarget(t glh.BufferType) uint32 {
	if t == glh.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func usage(u glh.Usage) uint32 {
	switch u {
	case glh.DynamicDraw:
		return gl.DYNAMIC_DRAW
	case glh.StreamDraw:
		return gl.STREAM_DRAW
	}
	return gl.STATIC_DRAW
}

func shaderType(k glh.ShaderKind) uint32 {
	if k == glh.FragmentShader {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func param(p glh.Param) uint32 {
	switch p {
	case glh.CompileStatus:
		return gl.COMPILE_STATUS
	case glh.LinkStatus:
		return gl.LINK_STATUS
	}
	return gl.INFO_LOG_LENGTH
}

func texParam(p glh.TexParam) uint32 {
	switch p {
	case glh.TextureWrapS:
		return gl.TEXTURE_WRAP_S
	case glh.TextureWrapT:
		return gl.TEXTURE_WRAP_T
	case glh.TextureMinFilter:
		return gl.TEXTURE_MIN_FILTER
	}
	return gl.TEXTURE_MAG_FILTER
}

func texValue(v glh.TexValue) int32 {
	switch v {
	case glh.ClampToEdge:
		return gl.CLAMP_TO_EDGE
	case glh.Linear:
		return gl.LINEAR
	case glh.Nearest:
		return gl.NEAREST
	}
	return gl.REPEAT
}

func pixelFormat(f glh.PixelFormat) uint32 {
	if f == glh.RGB {
		return gl.RGB
	}
	return gl.RGBA
}

func polygonMode(m glh.PolygonMode) uint32 {
	switch m {
	case glh.Point:
		return gl.POINT
	case glh.Line:
		return gl.LINE
	}
	return gl.FILL
}

func (Backend) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (Backend) DeleteVertexArray(id uint32) {
	gl.DeleteVertexArrays(1, &id)
}

func (Backend) BindVertexArray(id uint32) {
	gl.BindVertexArray(id)
}

func (Backend) VertexAttribPointer(index uint32, size, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, stride, offset)
	gl.EnableVertexAttribArray(index)
}

func (Backend) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (Backend) DeleteBuffer(id uint32) {
	gl.DeleteBuffers(1, &id)
}

func (Backend) BindBuffer(t glh.BufferType, id uint32) {
	gl.BindBuffer(bufferTarget(t), id)
}

func (Backend) BufferData(t glh.BufferType, data []byte, u glh.Usage) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = gl.Ptr(data)
	}
	gl.BufferData(bufferTarget(t), len(data), p, usage(u))
}

func (Backend) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (Backend) DeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}

func (Backend) ActiveTexture(unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
}

func (Backend) BindTexture2D(id uint32) {
	gl.BindTexture(gl.TEXTURE_2D, id)
}

func (Backend) TexParameter(p glh.TexParam, v glh.TexValue) {
	gl.TexParameteri(gl.TEXTURE_2D, texParam(p), texValue(v))
}

func (Backend) TexImage2D(f glh.PixelFormat, width, height int32, pixels []byte) {
	// rows of RGB data are not 4 byte aligned
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	format := pixelFormat(f)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format), width, height, 0, format, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

func (Backend) CreateShader(k glh.ShaderKind) uint32 {
	return gl.CreateShader(shaderType(k))
}

func (Backend) ShaderSource(id uint32, src string) {
	csource, free := gl.Strs(src)
	defer free()
	length := int32(len(src))
	gl.ShaderSource(id, 1, csource, &length)
}

func (Backend) CompileShader(id uint32) {
	gl.CompileShader(id)
}

func (Backend) GetShaderiv(id uint32, p glh.Param) int32 {
	var v int32
	gl.GetShaderiv(id, param(p), &v)
	return v
}

func (Backend) GetShaderInfoLog(id uint32, buf []byte) int32 {
	if len(buf) == 0 {
		return 0
	}
	var written int32
	gl.GetShaderInfoLog(id, int32(len(buf)), &written, &buf[0])
	return written
}

func (Backend) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

func (Backend) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Backend) AttachShader(prog, shader uint32) {
	gl.AttachShader(prog, shader)
}

func (Backend) LinkProgram(id uint32) {
	gl.LinkProgram(id)
}

func (Backend) GetProgramiv(id uint32, p glh.Param) int32 {
	var v int32
	gl.GetProgramiv(id, param(p), &v)
	return v
}

func (Backend) GetProgramInfoLog(id uint32, buf []byte) int32 {
	if len(buf) == 0 {
		return 0
	}
	var written int32
	gl.GetProgramInfoLog(id, int32(len(buf)), &written, &buf[0])
	return written
}

func (Backend) DeleteProgram(id uint32) {
	gl.DeleteProgram(id)
}

func (Backend) UseProgram(id uint32) {
	gl.UseProgram(id)
}

func (Backend) GetUniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func (Backend) Uniform1i(loc int32, v0 int32) {
	gl.Uniform1i(loc, v0)
}

func (Backend) Uniform2i(loc int32, v0, v1 int32) {
	gl.Uniform2i(loc, v0, v1)
}

func (Backend) Uniform3i(loc int32, v0, v1, v2 int32) {
	gl.Uniform3i(loc, v0, v1, v2)
}

func (Backend) Uniform4i(loc int32, v0, v1, v2, v3 int32) {
	gl.Uniform4i(loc, v0, v1, v2, v3)
}

func (Backend) Uniform1f(loc int32, v0 float32) {
	gl.Uniform1f(loc, v0)
}

func (Backend) Uniform2f(loc int32, v0, v1 float32) {
	gl.Uniform2f(loc, v0, v1)
}

func (Backend) Uniform3f(loc int32, v0, v1, v2 float32) {
	gl.Uniform3f(loc, v0, v1, v2)
}

func (Backend) Uniform4f(loc int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(loc, v0, v1, v2, v3)
}

func (Backend) UniformMatrix4fv(loc int32, count int32, m []float32) {
	// column major, no transpose
	gl.UniformMatrix4fv(loc, count, false, &m[0])
}

func (Backend) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (Backend) Clear() {
	gl.Enable(gl.DEPTH_TEST)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (Backend) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (Backend) PolygonMode(m glh.PolygonMode) {
	gl.PolygonMode(gl.FRONT_AND_BACK, polygonMode(m))
}

func (Backend) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

func (Backend) ReadPixels(x, y, width, height int32) []byte {
	pix := make([]byte, 4*width*height)
	if len(pix) == 0 {
		return pix
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(x, y, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	return pix
}
