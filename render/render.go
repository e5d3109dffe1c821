// SPDX-License-Identifier: GPL-2.0-or-later

// Package render owns the GL objects of the demo and draws a frame from a
// scene.FrameState.
package render

import (
	"github.com/pkg/errors"

	"gocube/assets"
	"gocube/conlog"
	"gocube/glh"
	"gocube/image"
	"gocube/scene"
)

const (
	brickUnit = 0
	faceUnit  = 1
)

type Options struct {
	VertexShader   string
	FragmentShader string
	Brick          string
	Face           string
	ClearColor     [4]float32
}

type Renderer struct {
	b     glh.Backend
	opts  Options
	arena glh.Arena

	vao         *glh.VertexArray
	brick, face *glh.Texture
	prog        *glh.Program

	wireframe bool
	// uniform errors already logged, to not repeat them every frame
	reported map[string]bool
}

// New uploads the cube mesh and both textures and builds the shader program.
// Everything created before a failure is released again.
func New(b glh.Backend, o Options) (*Renderer, error) {
	r := &Renderer{
		b:        b,
		opts:     o,
		reported: make(map[string]bool),
	}
	if err := r.init(); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

func (r *Renderer) init() error {
	vao, err := glh.NewVertexArray(r.b)
	if err != nil {
		return err
	}
	r.arena.Add(vao)
	r.vao = vao
	vao.Bind()

	vbo, err := glh.NewBuffer(r.b)
	if err != nil {
		return err
	}
	r.arena.Add(vbo)
	vbo.Bind(glh.ArrayBuffer)
	vbo.SetData(glh.ArrayBuffer, scene.VertexBytes(), glh.StaticDraw)
	vao.AttribPointer(0, 3, scene.VertexStride, 0)
	vao.AttribPointer(1, 2, scene.VertexStride, scene.TexCoordOffset)
	glh.ClearVertexArrayBinding(r.b)
	glh.ClearBufferBinding(r.b, glh.ArrayBuffer)

	if r.brick, err = r.loadTexture(r.opts.Brick, brickUnit); err != nil {
		return err
	}
	if r.face, err = r.loadTexture(r.opts.Face, faceUnit); err != nil {
		return err
	}

	p, err := r.buildProgram()
	if err != nil {
		return err
	}
	r.prog = p
	r.b.ClearColor(r.opts.ClearColor[0], r.opts.ClearColor[1], r.opts.ClearColor[2], r.opts.ClearColor[3])
	return nil
}

func (r *Renderer) loadTexture(path string, unit int) (*glh.Texture, error) {
	t, err := glh.LoadTexture(r.b, path, unit)
	if err != nil {
		return nil, errors.Wrapf(err, "texture %s", path)
	}
	r.arena.Add(t)
	return t, nil
}

func (r *Renderer) buildProgram() (*glh.Program, error) {
	vs, err := assets.ReadShader(r.opts.VertexShader)
	if err != nil {
		return nil, err
	}
	fs, err := assets.ReadShader(r.opts.FragmentShader)
	if err != nil {
		return nil, err
	}
	p, err := glh.ProgramFromVertFrag(r.b, vs, fs)
	if err != nil {
		return nil, err
	}
	p.Use()
	// samplers are bound to fixed units
	for name, unit := range map[string]int32{"brick": brickUnit, "face": faceUnit} {
		if err := p.SetInt(name, unit); err != nil {
			conlog.Warnf("%v", err)
		}
	}
	return p, nil
}

// Reload rebuilds the program from the shader files. On failure the old
// program stays in use.
func (r *Renderer) Reload() error {
	p, err := r.buildProgram()
	if err != nil {
		if r.prog != nil {
			r.prog.Use()
		}
		return err
	}
	if r.prog != nil {
		r.prog.Release()
	}
	r.prog = p
	clear(r.reported)
	return nil
}

func (r *Renderer) Resize(width, height int32) {
	r.b.Viewport(0, 0, width, height)
}

func (r *Renderer) SetWireframe(on bool) {
	if on == r.wireframe {
		return
	}
	r.wireframe = on
	if on {
		r.b.PolygonMode(glh.Line)
	} else {
		r.b.PolygonMode(glh.Fill)
	}
}

func (r *Renderer) report(err error) {
	if err == nil {
		return
	}
	var ue *glh.UniformError
	key := err.Error()
	if errors.As(err, &ue) {
		key = ue.Name
	}
	if r.reported[key] {
		return
	}
	r.reported[key] = true
	conlog.Warnf("%v", err)
}

// Draw renders all cube instances as seen from the camera in s.
func (r *Renderer) Draw(s *scene.FrameState) {
	r.b.Clear()
	r.brick.Bind(brickUnit)
	r.face.Bind(faceUnit)
	r.prog.Use()
	r.report(r.prog.SetFloat("mix_lvl", s.Mix))
	r.report(r.prog.SetMat4("view", s.View()))
	r.report(r.prog.SetMat4("projection", s.Projection()))
	r.vao.Bind()
	for i := range scene.CubePositions {
		r.report(r.prog.SetMat4("model", scene.ModelMatrix(i, s.Angle)))
		r.b.DrawTriangles(0, scene.VertexCount)
	}
}

// Screenshot writes the current framebuffer into dir and returns the file
// name.
func (r *Renderer) Screenshot(dir string, width, height int32) (string, error) {
	pix := r.b.ReadPixels(0, 0, width, height)
	return image.WriteScreenshot(dir, pix, int(width), int(height))
}

// Close releases the program and then everything else in reverse order of
// creation.
func (r *Renderer) Close() {
	if r.prog != nil {
		r.prog.Release()
		r.prog = nil
	}
	r.arena.Close()
}
