package pixel

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// Buffer is a dense in-memory grid of packed ARGB values with fixed
// dimensions. It is the unit the pipeline's named-buffer registry owns and
// the unit the codec converts to and from encoded image bytes.
//
// Get and Set are the contract surface: they panic with ErrOutOfRange for
// any coordinate outside the buffer, never clamping or ignoring the access.
// Buffer also implements image.Image for interop with standard encoders;
// that read-only surface follows image conventions instead and returns a
// zero pixel outside the bounds.
type Buffer struct {
	width  int
	height int
	pix    []ARGB
}

// NewBuffer creates a zero-filled buffer (every pixel fully transparent
// black). Width and height may be zero; negative dimensions panic with
// ErrInvalidDimension.
func NewBuffer(width, height int) *Buffer {
	if width < 0 || height < 0 {
		panic(errors.Wrapf(ErrInvalidDimension, "%dx%d", width, height))
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]ARGB, width*height),
	}
}

// FromImage clones every pixel of an external raster image into a new
// buffer of the same size. The image's own origin offset is discarded: the
// buffer is always addressed from (0,0).
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	b := NewBuffer(bounds.Dx(), bounds.Dy())
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.pix[x+y*b.width] = FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return b
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Len returns the number of pixels the buffer holds.
func (b *Buffer) Len() int { return len(b.pix) }

// Get returns the pixel at (x, y). It panics with ErrOutOfRange outside
// the buffer bounds.
func (b *Buffer) Get(x, y int) ARGB {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic(errors.Wrapf(ErrOutOfRange, "(%d,%d) outside %dx%d buffer", x, y, b.width, b.height))
	}
	return b.pix[x+y*b.width]
}

// Set overwrites the pixel at (x, y). It panics with ErrOutOfRange outside
// the buffer bounds.
func (b *Buffer) Set(x, y int, v ARGB) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic(errors.Wrapf(ErrOutOfRange, "(%d,%d) outside %dx%d buffer", x, y, b.width, b.height))
	}
	b.pix[x+y*b.width] = v
}

// ToImage materializes the buffer into the external raster representation
// used for encoding.
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for i, c := range b.pix {
		o := i * 4
		img.Pix[o+0] = c.R()
		img.Pix[o+1] = c.G()
		img.Pix[o+2] = c.B()
		img.Pix[o+3] = c.A()
	}
	return img
}

// Free releases the backing storage. Calling Free more than once is a
// no-op. A freed buffer has zero dimensions, so any later Get or Set
// panics with ErrOutOfRange.
func (b *Buffer) Free() {
	b.pix = nil
	b.width = 0
	b.height = 0
}

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.width, b.height) }

// At implements image.Image. Unlike Get it follows image conventions and
// returns a zero pixel outside the bounds.
func (b *Buffer) At(x, y int) color.Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return ARGB(0)
	}
	return b.pix[x+y*b.width]
}
