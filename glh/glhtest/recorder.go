// SPDX-License-Identifier: GPL-2.0-or-later

// Package glhtest provides a glh.Backend that runs without a GL context.
package glhtest

import (
	"fmt"
	"strings"

	"gocube/glh"
)

// Recorder is a glh.Backend that hands out ids, tracks which objects are
// alive and records draw related state. Shader sources containing
// "syntax error" fail to compile.
type Recorder struct {
	next uint32
	live map[uint32]string

	sources  map[uint32]string
	compiled map[uint32]bool
	linked   map[uint32]bool
	attached map[uint32][]uint32
	logs     map[uint32]string

	// Uniforms are the active uniforms of every linked program.
	Uniforms map[string]int32
	// Floats and Ints hold the last scalar uploaded per location.
	Floats map[int32]float32
	Ints   map[int32]int32
	// Matrices holds the last matrix block uploaded per location.
	Matrices map[int32][]float32

	Bound struct {
		VertexArray uint32
		Program     uint32
		Textures    map[int]uint32
	}
	activeUnit int

	Viewports  [][4]int32
	ClearedTo  [4]float32
	Clears     int
	Mode       glh.PolygonMode
	Draws      int
	PixelsRead int
}

func NewRecorder(uniforms ...string) *Recorder {
	r := &Recorder{
		live:     make(map[uint32]string),
		sources:  make(map[uint32]string),
		compiled: make(map[uint32]bool),
		linked:   make(map[uint32]bool),
		attached: make(map[uint32][]uint32),
		logs:     make(map[uint32]string),
		Uniforms: make(map[string]int32),
		Floats:   make(map[int32]float32),
		Ints:     make(map[int32]int32),
		Matrices: make(map[int32][]float32),
	}
	r.Bound.Textures = make(map[int]uint32)
	for i, u := range uniforms {
		r.Uniforms[u] = int32(i)
	}
	return r
}

var _ glh.Backend = (*Recorder)(nil)

func (r *Recorder) alloc(kind string) uint32 {
	r.next++
	r.live[r.next] = kind
	return r.next
}

func (r *Recorder) free(id uint32) {
	delete(r.live, id)
}

// Live returns the number of objects of kind that were created and not
// deleted yet. Kinds are "vertex array", "buffer", "texture", "shader" and
// "program".
func (r *Recorder) Live(kind string) int {
	n := 0
	for _, k := range r.live {
		if k == kind {
			n++
		}
	}
	return n
}

// LiveTotal counts all objects not deleted yet.
func (r *Recorder) LiveTotal() int {
	return len(r.live)
}

func (r *Recorder) GenVertexArray() uint32      { return r.alloc("vertex array") }
func (r *Recorder) DeleteVertexArray(id uint32) { r.free(id) }
func (r *Recorder) BindVertexArray(id uint32)   { r.Bound.VertexArray = id }

func (r *Recorder) VertexAttribPointer(index uint32, size, stride int32, offset uintptr) {}

func (r *Recorder) GenBuffer() uint32                                  { return r.alloc("buffer") }
func (r *Recorder) DeleteBuffer(id uint32)                             { r.free(id) }
func (r *Recorder) BindBuffer(t glh.BufferType, id uint32)             {}
func (r *Recorder) BufferData(t glh.BufferType, d []byte, u glh.Usage) {}

func (r *Recorder) GenTexture() uint32      { return r.alloc("texture") }
func (r *Recorder) DeleteTexture(id uint32) { r.free(id) }
func (r *Recorder) ActiveTexture(unit int)  { r.activeUnit = unit }
func (r *Recorder) BindTexture2D(id uint32) { r.Bound.Textures[r.activeUnit] = id }

func (r *Recorder) TexParameter(p glh.TexParam, v glh.TexValue)                      {}
func (r *Recorder) TexImage2D(f glh.PixelFormat, width, height int32, pixels []byte) {}

func (r *Recorder) CreateShader(k glh.ShaderKind) uint32 { return r.alloc("shader") }
func (r *Recorder) ShaderSource(id uint32, src string)   { r.sources[id] = src }

func (r *Recorder) CompileShader(id uint32) {
	if strings.Contains(r.sources[id], "syntax error") {
		r.compiled[id] = false
		r.logs[id] = "0:1(1): error: syntax error\n"
		return
	}
	r.compiled[id] = true
	r.logs[id] = ""
}

func (r *Recorder) GetShaderiv(id uint32, p glh.Param) int32 {
	return r.status(id, p, r.compiled)
}

func (r *Recorder) GetShaderInfoLog(id uint32, buf []byte) int32 {
	return int32(copy(buf, r.logs[id]))
}

func (r *Recorder) DeleteShader(id uint32) { r.free(id) }

func (r *Recorder) CreateProgram() uint32 { return r.alloc("program") }

func (r *Recorder) AttachShader(prog, shader uint32) {
	r.attached[prog] = append(r.attached[prog], shader)
}

func (r *Recorder) LinkProgram(id uint32) {
	r.linked[id] = true
	r.logs[id] = ""
	for _, s := range r.attached[id] {
		if !strings.Contains(r.sources[s], "main(") {
			r.linked[id] = false
			r.logs[id] = fmt.Sprintf("error: shader %d has no main function\n", s)
		}
	}
}

func (r *Recorder) GetProgramiv(id uint32, p glh.Param) int32 {
	return r.status(id, p, r.linked)
}

func (r *Recorder) status(id uint32, p glh.Param, ok map[uint32]bool) int32 {
	if p == glh.InfoLogLength {
		if r.logs[id] == "" {
			return 0
		}
		return int32(len(r.logs[id]) + 1)
	}
	if ok[id] {
		return 1
	}
	return 0
}

func (r *Recorder) GetProgramInfoLog(id uint32, buf []byte) int32 {
	return int32(copy(buf, r.logs[id]))
}

func (r *Recorder) DeleteProgram(id uint32) { r.free(id) }
func (r *Recorder) UseProgram(id uint32)    { r.Bound.Program = id }

func (r *Recorder) GetUniformLocation(prog uint32, name string) int32 {
	if loc, ok := r.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (r *Recorder) Uniform1i(loc int32, v0 int32)             { r.Ints[loc] = v0 }
func (r *Recorder) Uniform2i(loc int32, v0, v1 int32)         { r.Ints[loc] = v0 }
func (r *Recorder) Uniform3i(loc int32, v0, v1, v2 int32)     { r.Ints[loc] = v0 }
func (r *Recorder) Uniform4i(loc int32, v0, v1, v2, v3 int32) { r.Ints[loc] = v0 }

func (r *Recorder) Uniform1f(loc int32, v0 float32)             { r.Floats[loc] = v0 }
func (r *Recorder) Uniform2f(loc int32, v0, v1 float32)         { r.Floats[loc] = v0 }
func (r *Recorder) Uniform3f(loc int32, v0, v1, v2 float32)     { r.Floats[loc] = v0 }
func (r *Recorder) Uniform4f(loc int32, v0, v1, v2, v3 float32) { r.Floats[loc] = v0 }

func (r *Recorder) UniformMatrix4fv(loc int32, count int32, m []float32) {
	r.Matrices[loc] = append([]float32(nil), m...)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.ClearedTo = [4]float32{red, green, blue, alpha}
}

func (r *Recorder) Clear() { r.Clears++ }

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.Viewports = append(r.Viewports, [4]int32{x, y, width, height})
}

func (r *Recorder) PolygonMode(m glh.PolygonMode) { r.Mode = m }

func (r *Recorder) DrawTriangles(first, count int32) { r.Draws++ }

// ReadPixels returns a framebuffer whose pixels all hold their row number
// in the red channel.
func (r *Recorder) ReadPixels(x, y, width, height int32) []byte {
	r.PixelsRead++
	p := make([]byte, 4*width*height)
	for row := int32(0); row < height; row++ {
		for col := int32(0); col < width; col++ {
			i := 4 * (row*width + col)
			p[i] = byte(row)
			p[i+3] = 0xff
		}
	}
	return p
}
