// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

var (
	// ErrMissingUniform means the linked program has no uniform of that name.
	ErrMissingUniform = errors.New("uniform not found")
	// ErrBadArity means a scalar/vector upload got other than 1 to 4 values.
	ErrBadArity = errors.New("uniform values must have 1 to 4 components")
)

type UniformError struct {
	Name string
	Err  error
}

func (e *UniformError) Error() string {
	return fmt.Sprintf("uniform %q: %v", e.Name, e.Err)
}

func (e *UniformError) Unwrap() error {
	return e.Err
}

// Location looks up the location of a uniform. Results are cached for the
// lifetime of the program.
func (p *Program) Location(name string) (int32, error) {
	if loc, ok := p.locations[name]; ok {
		return loc, nil
	}
	loc := p.b.GetUniformLocation(p.id, name)
	if loc < 0 {
		return -1, &UniformError{Name: name, Err: ErrMissingUniform}
	}
	p.locations[name] = loc
	return loc, nil
}

// SetInt uploads an int, ivec2, ivec3 or ivec4 depending on len(vals).
// The program needs to be in use.
func (p *Program) SetInt(name string, vals ...int32) error {
	loc, err := p.Location(name)
	if err != nil {
		return err
	}
	switch len(vals) {
	case 1:
		p.b.Uniform1i(loc, vals[0])
	case 2:
		p.b.Uniform2i(loc, vals[0], vals[1])
	case 3:
		p.b.Uniform3i(loc, vals[0], vals[1], vals[2])
	case 4:
		p.b.Uniform4i(loc, vals[0], vals[1], vals[2], vals[3])
	default:
		return &UniformError{Name: name, Err: errors.Wrapf(ErrBadArity, "got %d", len(vals))}
	}
	return nil
}

// SetBool uploads b as an int uniform.
func (p *Program) SetBool(name string, b bool) error {
	var v int32
	if b {
		v = 1
	}
	return p.SetInt(name, v)
}

// SetFloat uploads a float, vec2, vec3 or vec4 depending on len(vals).
func (p *Program) SetFloat(name string, vals ...float32) error {
	loc, err := p.Location(name)
	if err != nil {
		return err
	}
	switch len(vals) {
	case 1:
		p.b.Uniform1f(loc, vals[0])
	case 2:
		p.b.Uniform2f(loc, vals[0], vals[1])
	case 3:
		p.b.Uniform3f(loc, vals[0], vals[1], vals[2])
	case 4:
		p.b.Uniform4f(loc, vals[0], vals[1], vals[2], vals[3])
	default:
		return &UniformError{Name: name, Err: errors.Wrapf(ErrBadArity, "got %d", len(vals))}
	}
	return nil
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) error {
	return p.SetFloat(name, v[:]...)
}

// SetMat4 uploads ms as one contiguous block. mgl32 matrices are column
// major which is what the backend expects, so nothing gets transposed.
func (p *Program) SetMat4(name string, ms ...mgl32.Mat4) error {
	loc, err := p.Location(name)
	if err != nil {
		return err
	}
	if len(ms) == 0 {
		return &UniformError{Name: name, Err: errors.Wrap(ErrBadArity, "no matrices")}
	}
	vals := make([]float32, 0, 16*len(ms))
	for i := range ms {
		vals = append(vals, ms[i][:]...)
	}
	p.b.UniformMatrix4fv(loc, int32(len(ms)), vals)
	return nil
}
