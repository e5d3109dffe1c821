// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestReleaseOnce(t *testing.T) {
	f := newFake()
	va, err := NewVertexArray(f)
	if err != nil {
		t.Fatal(err)
	}
	id := va.ID()
	if id == 0 {
		t.Fatalf("ID() = 0 for live vertex array")
	}
	va.Release()
	va.Release()
	if f.deleted[id] != 1 {
		t.Errorf("vertex array %d deleted %d times; want 1", id, f.deleted[id])
	}
	if va.ID() != 0 {
		t.Errorf("ID() = %d after Release", va.ID())
	}
}

func TestAllocationFailed(t *testing.T) {
	tests := []struct {
		name string
		new  func(b Backend) error
	}{
		{"vertex array", func(b Backend) error { _, err := NewVertexArray(b); return err }},
		{"buffer", func(b Backend) error { _, err := NewBuffer(b); return err }},
		{"texture", func(b Backend) error { _, err := NewTexture(b); return err }},
		{"shader", func(b Backend) error { _, err := ShaderFromSource(b, VertexShader, "void main(){}"); return err }},
	}
	for _, test := range tests {
		f := newFake()
		f.allocZero = true
		if err := test.new(f); !errors.Is(err, ErrAllocationFailed) {
			t.Errorf("%s: err = %v; want ErrAllocationFailed", test.name, err)
		}
	}
}

func TestBufferBindTarget(t *testing.T) {
	f := newFake()
	buf, err := NewBuffer(f)
	if err != nil {
		t.Fatal(err)
	}
	defer buf.Release()
	buf.Bind(ElementArrayBuffer)
	if f.boundBuffer[ElementArrayBuffer] != buf.ID() || f.boundBuffer[ArrayBuffer] != 0 {
		t.Errorf("bound buffers = %v", f.boundBuffer)
	}
	buf.Bind(ArrayBuffer)
	buf.SetData(ArrayBuffer, []byte{1, 2, 3}, StaticDraw)
	if got := f.bufferData[ArrayBuffer]; len(got) != 3 {
		t.Errorf("buffer data = %v", got)
	}
	ClearBufferBinding(f, ArrayBuffer)
	if f.boundBuffer[ArrayBuffer] != 0 {
		t.Errorf("array buffer still bound: %d", f.boundBuffer[ArrayBuffer])
	}
}

func TestVertexArrayAttribs(t *testing.T) {
	f := newFake()
	va, err := NewVertexArray(f)
	if err != nil {
		t.Fatal(err)
	}
	defer va.Release()
	va.Bind()
	if f.boundVA != va.ID() {
		t.Errorf("bound vertex array = %d; want %d", f.boundVA, va.ID())
	}
	va.AttribPointer(0, 3, 20, 0)
	va.AttribPointer(1, 2, 20, 12)
	if got, want := f.lastCall(), "attrib 1 size 2 stride 20 offset 12"; got != want {
		t.Errorf("last call = %q; want %q", got, want)
	}
	ClearVertexArrayBinding(f)
	if f.boundVA != 0 {
		t.Errorf("vertex array still bound")
	}
}

type orderRecorder struct {
	name  string
	order *[]string
}

func (r orderRecorder) Release() {
	*r.order = append(*r.order, r.name)
}

func TestArenaReleasesInReverse(t *testing.T) {
	var order []string
	var a Arena
	for _, n := range []string{"vao", "vbo", "tex"} {
		a.Add(orderRecorder{n, &order})
	}
	if a.Len() != 3 {
		t.Errorf("Len() = %d", a.Len())
	}
	a.Close()
	if got := strings.Join(order, ","); got != "tex,vbo,vao" {
		t.Errorf("release order = %v; want tex,vbo,vao", got)
	}
	a.Close()
	if len(order) != 3 {
		t.Errorf("second Close released again: %v", order)
	}
}

func TestArenaExactlyOnce(t *testing.T) {
	f := newFake()
	var a Arena
	va, _ := NewVertexArray(f)
	buf, _ := NewBuffer(f)
	tex, _ := NewTexture(f)
	ids := []uint32{va.ID(), buf.ID(), tex.ID()}
	a.Add(va)
	a.Add(buf)
	a.Add(tex)
	// an early scoped release must not lead to a second delete
	buf.Release()
	a.Close()
	for _, id := range ids {
		if f.deleted[id] != 1 {
			t.Errorf("id %d deleted %d times", id, f.deleted[id])
		}
	}
	if len(f.live) != 0 {
		t.Errorf("live objects after Close: %v", f.live)
	}
}
