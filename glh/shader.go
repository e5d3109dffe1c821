// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// CompileError carries the compiler diagnostics of one shader stage.
type CompileError struct {
	Stage ShaderKind
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %v shader: %s", e.Stage, e.Log)
}

// LinkError carries the linker diagnostics of a program.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

type Shader struct {
	handle
	kind ShaderKind
}

func (s *Shader) Kind() ShaderKind {
	return s.kind
}

// infoLog reads a shader or program log: ask for the length, allocate,
// let the backend fill it.
func infoLog(id uint32, iv func(uint32, Param) int32, get func(uint32, []byte) int32) string {
	n := iv(id, InfoLogLength)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	written := get(id, buf)
	if written < 0 {
		written = 0
	} else if int(written) > len(buf) {
		written = int32(len(buf))
	}
	return strings.TrimRight(string(buf[:written]), "\x00\n")
}

// ShaderFromSource compiles src as a shader of the given kind. On failure the
// shader is released and a *CompileError with the compiler log is returned.
func ShaderFromSource(b Backend, kind ShaderKind, src string) (*Shader, error) {
	h, err := acquire(kind.String()+" shader", b.CreateShader(kind), b.DeleteShader)
	if err != nil {
		return nil, err
	}
	s := &Shader{handle: h, kind: kind}
	b.ShaderSource(s.id, src)
	b.CompileShader(s.id)
	if b.GetShaderiv(s.id, CompileStatus) == 0 {
		l := infoLog(s.id, b.GetShaderiv, b.GetShaderInfoLog)
		s.Release()
		return nil, &CompileError{Stage: kind, Log: l}
	}
	return s, nil
}

type Program struct {
	handle
	b         Backend
	locations map[string]int32
}

// ProgramFromVertFrag builds a program from a vertex and a fragment shader.
// The intermediate shaders never outlive the call, whether it succeeds or
// not.
func ProgramFromVertFrag(b Backend, vertex, fragment string) (*Program, error) {
	vert, err := ShaderFromSource(b, VertexShader, vertex)
	if err != nil {
		return nil, err
	}
	defer vert.Release()
	frag, err := ShaderFromSource(b, FragmentShader, fragment)
	if err != nil {
		return nil, err
	}
	defer frag.Release()

	h, err := acquire("program", b.CreateProgram(), b.DeleteProgram)
	if err != nil {
		return nil, err
	}
	p := &Program{
		handle:    h,
		b:         b,
		locations: make(map[string]int32),
	}
	b.AttachShader(p.id, vert.id)
	b.AttachShader(p.id, frag.id)
	b.LinkProgram(p.id)
	// The shaders are only marked for deletion here, the program keeps
	// them alive as long as they stay attached.
	vert.Release()
	frag.Release()
	if b.GetProgramiv(p.id, LinkStatus) == 0 {
		l := infoLog(p.id, b.GetProgramiv, b.GetProgramInfoLog)
		p.Release()
		return nil, &LinkError{Log: l}
	}
	return p, nil
}

func (p *Program) Use() {
	p.b.UseProgram(p.id)
}

// IsCompileError reports whether err stems from a failed shader stage.
func IsCompileError(err error) bool {
	var ce *CompileError
	return errors.As(err, &ce)
}

// IsLinkError reports whether err stems from a failed program link.
func IsLinkError(err error) bool {
	var le *LinkError
	return errors.As(err, &le)
}
