// SPDX-License-Identifier: GPL-2.0-or-later

// Package image decodes texture images into tightly packed 8 bit pixel rows
// ready for upload.
package image

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"gocube/conlog"
)

var (
	ErrBadPath           = errors.New("bad texture image path")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

type Format int

const (
	RGB Format = iota + 1
	RGBA
)

func (f Format) Channels() int {
	switch f {
	case RGB:
		return 3
	case RGBA:
		return 4
	}
	return 0
}

func (f Format) String() string {
	switch f {
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	}
	return "unknown"
}

// Pixels is an 8 bit per channel image without row padding.
type Pixels struct {
	Format Format
	Width  int
	Height int
	Pix    []byte
}

func (p *Pixels) stride() int {
	return p.Width * p.Format.Channels()
}

// FlipVertical reverses the row order in place.
func (p *Pixels) FlipVertical() {
	flipRows(p.Pix, p.stride(), p.Height)
}

func flipRows(pix []byte, stride, height int) {
	tmp := make([]byte, stride)
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		t := pix[top*stride : (top+1)*stride]
		b := pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, t)
		copy(t, b)
		copy(b, tmp)
	}
}

// Load decodes the image file at name and flips it so the first row is the
// bottom one, which is where texture coordinates start.
func Load(name string) (*Pixels, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(ErrBadPath, "%s: %v", name, err)
	}
	var p *Pixels
	if strings.EqualFold(filepath.Ext(name), ".tga") {
		p, err = decodeTGA(bytes.NewReader(data))
	} else {
		p, err = Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	p.FlipVertical()
	conlog.Debugf("Loaded %v (%dx%d %v)", name, p.Width, p.Height, p.Format)
	return p, nil
}

// Decode decodes any registered image format. The rows are kept in file
// order.
func Decode(r io.Reader) (*Pixels, error) {
	img, kind, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "image corrupt")
	}
	p, err := FromImage(img)
	if err != nil {
		return nil, errors.Wrap(err, kind)
	}
	return p, nil
}

// FromImage converts 3 channel images to RGB and 4 channel images to RGBA.
func FromImage(img image.Image) (*Pixels, error) {
	switch i := img.(type) {
	case *image.YCbCr:
		return toRGB(img), nil
	case *image.RGBA, *image.NRGBA:
		return toRGBA(img), nil
	case *image.Paletted:
		if paletteOpaque(i.Palette) {
			return toRGB(img), nil
		}
		return toRGBA(img), nil
	}
	return nil, errors.Wrapf(ErrUnsupportedFormat, "%T", img)
}

func paletteOpaque(p color.Palette) bool {
	for _, c := range p {
		if _, _, _, a := c.RGBA(); a != 0xffff {
			return false
		}
	}
	return true
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) && n.Stride == 4*n.Rect.Dx() {
		return n
	}
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)
	return n
}

func toRGBA(img image.Image) *Pixels {
	n := toNRGBA(img)
	return &Pixels{
		Format: RGBA,
		Width:  n.Rect.Dx(),
		Height: n.Rect.Dy(),
		Pix:    n.Pix,
	}
}

func toRGB(img image.Image) *Pixels {
	n := toNRGBA(img)
	w, h := n.Rect.Dx(), n.Rect.Dy()
	pix := make([]byte, 0, w*h*3)
	for i := 0; i < len(n.Pix); i += 4 {
		pix = append(pix, n.Pix[i], n.Pix[i+1], n.Pix[i+2])
	}
	return &Pixels{
		Format: RGB,
		Width:  w,
		Height: h,
		Pix:    pix,
	}
}

// Write expects RGBA 8bit data
func Write(name string, data []byte, width, height int) error {
	if len(data) < width*height*4 {
		return errors.Errorf("image %dx%d needs %d bytes, got %d", width, height, width*height*4, len(data))
	}
	r := image.Rect(0, 0, width, height)
	img := &image.NRGBA{
		Pix:    data,
		Stride: 4 * width,
		Rect:   r,
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return err
	}
	return nil
}

// WriteScreenshot stores framebuffer contents, bottom row first, as a png
// with a unique name inside dir. It returns the file name.
func WriteScreenshot(dir string, data []byte, width, height int) (string, error) {
	if len(data) < width*height*4 {
		return "", errors.Errorf("screenshot needs %d bytes, got %d", width*height*4, len(data))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "screenshot directory")
	}
	flipRows(data, 4*width, height)
	name := filepath.Join(dir, fmt.Sprintf("screenshot-%s.png", uuid.New()))
	if err := Write(name, data, width, height); err != nil {
		return "", errors.Wrap(err, "write screenshot")
	}
	return name, nil
}
