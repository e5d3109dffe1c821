// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

type tgaHeader struct {
	IDLength       uint8
	ColormapType   uint8
	ImageType      uint8
	ColormapIndex  uint16
	ColormapLength uint16
	ColormapSize   uint8
	XOrigin        uint16
	YOrigin        uint16
	Width          uint16
	Height         uint16
	PixelSize      uint8
	Attributes     uint8
}

// tga image origin, bit 5 of Attributes
const tgaTopLeft = 1 << 5

// decodeTGA reads uncompressed true color tga files. 24bit files become
// RGB, 32bit ones RGBA. Rows are returned top row first like all other
// decoders.
func decodeTGA(r io.Reader) (*Pixels, error) {
	var header tgaHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, errors.Wrap(err, "invalid tga header")
	}
	if header.ImageType != 2 {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "tga type %d", header.ImageType)
	}
	if header.ColormapType != 0 || (header.PixelSize != 32 && header.PixelSize != 24) {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "tga with %d bits per pixel", header.PixelSize)
	}

	if header.IDLength != 0 {
		// skip Image ID
		if _, err := io.CopyN(io.Discard, r, int64(header.IDLength)); err != nil {
			return nil, errors.Wrap(err, "tga image id")
		}
	}

	// ColormapType is 0 so no color map data. Next is image data.
	p := &Pixels{
		Format: RGB,
		Width:  int(header.Width),
		Height: int(header.Height),
	}
	if header.PixelSize == 32 {
		p.Format = RGBA
	}
	ch := p.Format.Channels()
	n := p.Width * p.Height * ch
	// The header size is not trusted. Only what the file holds is read.
	pix, err := io.ReadAll(io.LimitReader(r, int64(n)))
	if err != nil {
		return nil, errors.Wrap(err, "tga pixels")
	}
	if len(pix) < n {
		return nil, errors.Errorf("tga %dx%d needs %d bytes of pixels, got %d", p.Width, p.Height, n, len(pix))
	}
	p.Pix = pix
	// stored as BGR(A)
	for i := 0; i < len(p.Pix); i += ch {
		p.Pix[i], p.Pix[i+2] = p.Pix[i+2], p.Pix[i]
	}
	if header.Attributes&tgaTopLeft == 0 {
		p.FlipVertical()
	}
	return p, nil
}
