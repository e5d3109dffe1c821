// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"fmt"
	"strings"
)

// fakeBackend records calls and emulates just enough of a shader compiler:
// sources containing "syntax error" fail to compile, programs fail to link
// when a stage has no main function.
type fakeBackend struct {
	next uint32
	// allocZero makes the next allocation return 0
	allocZero bool

	live     map[uint32]string
	deleted  map[uint32]int
	sources  map[uint32]string
	kinds    map[uint32]ShaderKind
	compiled map[uint32]bool
	attached map[uint32][]uint32
	linked   map[uint32]bool
	logs     map[uint32]string
	uniforms map[string]int32

	boundVA     uint32
	boundBuffer map[BufferType]uint32
	activeUnit  int
	boundTex    map[int]uint32
	texParams   map[TexParam]TexValue
	texImage    struct {
		format        PixelFormat
		width, height int32
		pixels        []byte
	}
	bufferData map[BufferType][]byte
	attribs    []uint32
	used       uint32
	calls      []string
	matrices   []float32
	matCount   int32
}

var _ Backend = (*fakeBackend)(nil)

func newFake() *fakeBackend {
	return &fakeBackend{
		live:        make(map[uint32]string),
		deleted:     make(map[uint32]int),
		sources:     make(map[uint32]string),
		kinds:       make(map[uint32]ShaderKind),
		compiled:    make(map[uint32]bool),
		attached:    make(map[uint32][]uint32),
		linked:      make(map[uint32]bool),
		logs:        make(map[uint32]string),
		uniforms:    map[string]int32{"model": 0, "view": 1, "projection": 2, "mix_lvl": 3, "brick": 4, "face": 5, "color": 6},
		boundBuffer: make(map[BufferType]uint32),
		boundTex:    make(map[int]uint32),
		texParams:   make(map[TexParam]TexValue),
		bufferData:  make(map[BufferType][]byte),
	}
}

func (f *fakeBackend) alloc(kind string) uint32 {
	if f.allocZero {
		f.allocZero = false
		return 0
	}
	f.next++
	f.live[f.next] = kind
	return f.next
}

func (f *fakeBackend) free(id uint32) {
	f.deleted[id]++
	delete(f.live, id)
}

func (f *fakeBackend) liveCount(kind string) int {
	n := 0
	for _, k := range f.live {
		if k == kind {
			n++
		}
	}
	return n
}

func (f *fakeBackend) record(format string, v ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, v...))
}

func (f *fakeBackend) GenVertexArray() uint32             { return f.alloc("vertex array") }
func (f *fakeBackend) DeleteVertexArray(id uint32)        { f.free(id) }
func (f *fakeBackend) BindVertexArray(id uint32)          { f.boundVA = id }
func (f *fakeBackend) GenBuffer() uint32                  { return f.alloc("buffer") }
func (f *fakeBackend) DeleteBuffer(id uint32)             { f.free(id) }
func (f *fakeBackend) BindBuffer(t BufferType, id uint32) { f.boundBuffer[t] = id }
func (f *fakeBackend) GenTexture() uint32                 { return f.alloc("texture") }
func (f *fakeBackend) DeleteTexture(id uint32)            { f.free(id) }
func (f *fakeBackend) ActiveTexture(unit int)             { f.activeUnit = unit }
func (f *fakeBackend) BindTexture2D(id uint32)            { f.boundTex[f.activeUnit] = id }

func (f *fakeBackend) VertexAttribPointer(index uint32, size, stride int32, offset uintptr) {
	f.attribs = append(f.attribs, index)
	f.record("attrib %d size %d stride %d offset %d", index, size, stride, offset)
}

func (f *fakeBackend) BufferData(t BufferType, data []byte, u Usage) {
	f.bufferData[t] = append([]byte(nil), data...)
}

func (f *fakeBackend) TexParameter(p TexParam, v TexValue) {
	f.texParams[p] = v
}

func (f *fakeBackend) TexImage2D(format PixelFormat, width, height int32, pixels []byte) {
	f.texImage.format = format
	f.texImage.width = width
	f.texImage.height = height
	f.texImage.pixels = pixels
}

func (f *fakeBackend) CreateShader(k ShaderKind) uint32 {
	id := f.alloc("shader")
	if id != 0 {
		f.kinds[id] = k
	}
	return id
}

func (f *fakeBackend) ShaderSource(id uint32, src string) { f.sources[id] = src }

func (f *fakeBackend) CompileShader(id uint32) {
	src := f.sources[id]
	if strings.Contains(src, "syntax error") {
		f.logs[id] = "0:2(1): error: syntax error, unexpected IDENTIFIER\n"
		f.compiled[id] = false
		return
	}
	f.logs[id] = ""
	f.compiled[id] = true
}

func (f *fakeBackend) GetShaderiv(id uint32, p Param) int32 {
	switch p {
	case CompileStatus:
		if f.compiled[id] {
			return 1
		}
		return 0
	case InfoLogLength:
		if f.logs[id] == "" {
			return 0
		}
		return int32(len(f.logs[id]) + 1)
	}
	return 0
}

func (f *fakeBackend) GetShaderInfoLog(id uint32, buf []byte) int32 {
	return int32(copy(buf, f.logs[id]))
}

func (f *fakeBackend) DeleteShader(id uint32) { f.free(id) }

func (f *fakeBackend) CreateProgram() uint32 { return f.alloc("program") }

func (f *fakeBackend) AttachShader(prog, shader uint32) {
	f.attached[prog] = append(f.attached[prog], shader)
}

func (f *fakeBackend) LinkProgram(id uint32) {
	f.linked[id] = true
	f.logs[id] = ""
	for _, s := range f.attached[id] {
		if !strings.Contains(f.sources[s], "main(") {
			f.linked[id] = false
			f.logs[id] = fmt.Sprintf("error: %v shader lacks `main'\n", f.kinds[s])
			return
		}
	}
}

func (f *fakeBackend) GetProgramiv(id uint32, p Param) int32 {
	switch p {
	case LinkStatus:
		if f.linked[id] {
			return 1
		}
		return 0
	case InfoLogLength:
		if f.logs[id] == "" {
			return 0
		}
		return int32(len(f.logs[id]) + 1)
	}
	return 0
}

func (f *fakeBackend) GetProgramInfoLog(id uint32, buf []byte) int32 {
	return int32(copy(buf, f.logs[id]))
}

func (f *fakeBackend) DeleteProgram(id uint32) { f.free(id) }
func (f *fakeBackend) UseProgram(id uint32)    { f.used = id }

func (f *fakeBackend) GetUniformLocation(prog uint32, name string) int32 {
	f.record("location %s", name)
	if loc, ok := f.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeBackend) Uniform1i(loc int32, v0 int32) { f.record("1i %d %d", loc, v0) }
func (f *fakeBackend) Uniform2i(loc int32, v0, v1 int32) {
	f.record("2i %d %d %d", loc, v0, v1)
}
func (f *fakeBackend) Uniform3i(loc int32, v0, v1, v2 int32) {
	f.record("3i %d %d %d %d", loc, v0, v1, v2)
}
func (f *fakeBackend) Uniform4i(loc int32, v0, v1, v2, v3 int32) {
	f.record("4i %d %d %d %d %d", loc, v0, v1, v2, v3)
}
func (f *fakeBackend) Uniform1f(loc int32, v0 float32) { f.record("1f %d %v", loc, v0) }
func (f *fakeBackend) Uniform2f(loc int32, v0, v1 float32) {
	f.record("2f %d %v %v", loc, v0, v1)
}
func (f *fakeBackend) Uniform3f(loc int32, v0, v1, v2 float32) {
	f.record("3f %d %v %v %v", loc, v0, v1, v2)
}
func (f *fakeBackend) Uniform4f(loc int32, v0, v1, v2, v3 float32) {
	f.record("4f %d %v %v %v %v", loc, v0, v1, v2, v3)
}

func (f *fakeBackend) UniformMatrix4fv(loc int32, count int32, m []float32) {
	f.record("mat4 %d %d", loc, count)
	f.matCount = count
	f.matrices = append([]float32(nil), m...)
}

func (f *fakeBackend) ClearColor(r, g, b, a float32)      {}
func (f *fakeBackend) Clear()                             {}
func (f *fakeBackend) Viewport(x, y, width, height int32) {}
func (f *fakeBackend) PolygonMode(m PolygonMode)          {}
func (f *fakeBackend) DrawTriangles(first, count int32)   { f.record("draw %d %d", first, count) }
func (f *fakeBackend) ReadPixels(x, y, w, h int32) []byte { return make([]byte, 4*w*h) }

func (f *fakeBackend) lastCall() string {
	if len(f.calls) == 0 {
		return ""
	}
	return f.calls[len(f.calls)-1]
}
