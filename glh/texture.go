// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"github.com/pkg/errors"

	"gocube/image"
)

type Texture struct {
	handle
	b Backend
}

func NewTexture(b Backend) (*Texture, error) {
	h, err := acquire("texture", b.GenTexture(), b.DeleteTexture)
	if err != nil {
		return nil, err
	}
	return &Texture{handle: h, b: b}, nil
}

// Bind activates texture unit and binds t as its 2D texture.
func (t *Texture) Bind(unit int) {
	t.b.ActiveTexture(unit)
	t.b.BindTexture2D(t.id)
}

// SetParams sets repeat wrapping and linear filtering on the bound texture.
func (t *Texture) SetParams() {
	t.b.TexParameter(TextureWrapS, Repeat)
	t.b.TexParameter(TextureWrapT, Repeat)
	t.b.TexParameter(TextureMinFilter, Linear)
	t.b.TexParameter(TextureMagFilter, Linear)
}

// Upload copies p into the bound texture.
func (t *Texture) Upload(p *image.Pixels) error {
	var f PixelFormat
	switch p.Format {
	case image.RGB:
		f = RGB
	case image.RGBA:
		f = RGBA
	default:
		return errors.Wrapf(image.ErrUnsupportedFormat, "%v", p.Format)
	}
	t.b.TexImage2D(f, int32(p.Width), int32(p.Height), p.Pix)
	return nil
}

// LoadTexture creates a texture on the given unit and fills it from the
// image file at path.
func LoadTexture(b Backend, path string, unit int) (*Texture, error) {
	p, err := image.Load(path)
	if err != nil {
		return nil, err
	}
	t, err := NewTexture(b)
	if err != nil {
		return nil, err
	}
	t.Bind(unit)
	t.SetParams()
	if err := t.Upload(p); err != nil {
		t.Release()
		return nil, err
	}
	return t, nil
}
