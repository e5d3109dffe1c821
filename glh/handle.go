// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"github.com/pkg/errors"
)

// ErrAllocationFailed is returned when the backend hands out a zero id.
var ErrAllocationFailed = errors.New("graphics object allocation failed")

// handle owns one backend id. release is called exactly once, by the first
// Release.
type handle struct {
	id      uint32
	release func(uint32)
}

func (h *handle) ID() uint32 {
	return h.id
}

// Release deletes the backend object. Further calls do nothing.
func (h *handle) Release() {
	if h.id == 0 {
		return
	}
	h.release(h.id)
	h.id = 0
}

func acquire(what string, id uint32, release func(uint32)) (handle, error) {
	if id == 0 {
		return handle{}, errors.Wrap(ErrAllocationFailed, what)
	}
	return handle{id: id, release: release}, nil
}

type VertexArray struct {
	handle
	b Backend
}

func NewVertexArray(b Backend) (*VertexArray, error) {
	h, err := acquire("vertex array", b.GenVertexArray(), b.DeleteVertexArray)
	if err != nil {
		return nil, err
	}
	return &VertexArray{handle: h, b: b}, nil
}

func (va *VertexArray) Bind() {
	va.b.BindVertexArray(va.id)
}

// AttribPointer describes a float attribute of the currently bound array
// buffer. The vertex array needs to be bound first.
func (va *VertexArray) AttribPointer(index uint32, size, stride int32, offset uintptr) {
	va.b.VertexAttribPointer(index, size, stride, offset)
}

func ClearVertexArrayBinding(b Backend) {
	b.BindVertexArray(0)
}

type Buffer struct {
	handle
	b Backend
}

func NewBuffer(b Backend) (*Buffer, error) {
	h, err := acquire("buffer", b.GenBuffer(), b.DeleteBuffer)
	if err != nil {
		return nil, err
	}
	return &Buffer{handle: h, b: b}, nil
}

func (buf *Buffer) Bind(t BufferType) {
	buf.b.BindBuffer(t, buf.id)
}

// SetData sets the data for this buffer. It needs to be bound to t first.
func (buf *Buffer) SetData(t BufferType, data []byte, u Usage) {
	buf.b.BufferData(t, data, u)
}

func ClearBufferBinding(b Backend, t BufferType) {
	b.BindBuffer(t, 0)
}

// Releaser is any owned graphics object.
type Releaser interface {
	Release()
}

// Arena owns graphics objects until Close. Objects are released in reverse
// order of registration so dependents go before what they depend on.
type Arena struct {
	owned []Releaser
}

// Add takes ownership of r and returns it.
func (a *Arena) Add(r Releaser) Releaser {
	a.owned = append(a.owned, r)
	return r
}

func (a *Arena) Len() int {
	return len(a.owned)
}

func (a *Arena) Close() {
	for i := len(a.owned) - 1; i >= 0; i-- {
		a.owned[i].Release()
	}
	a.owned = nil
}
