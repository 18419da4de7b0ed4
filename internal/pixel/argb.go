package pixel

import (
	"fmt"
	"image/color"

	"github.com/pkg/errors"
)

// ARGB is one pixel value: four non-premultiplied 8-bit channels packed as
// A<<24 | R<<16 | G<<8 | B.
type ARGB uint32

// FromARGB packs four 8-bit channel values into a single pixel value.
func FromARGB(a, r, g, b uint8) ARGB {
	return ARGB(a)<<24 | ARGB(r)<<16 | ARGB(g)<<8 | ARGB(b)
}

// FromColor converts any color.Color to its packed ARGB value, reversing
// alpha premultiplication where the source model applies it.
func FromColor(c color.Color) ARGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromARGB(n.A, n.R, n.G, n.B)
}

// A returns the alpha channel (0 = fully transparent, 255 = opaque).
func (c ARGB) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c ARGB) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c ARGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c ARGB) B() uint8 { return uint8(c) }

// Channel returns the value of the single selected channel. It panics with
// ErrInvalidChannel unless ch has exactly one bit set.
func (c ARGB) Channel(ch Channel) uint8 {
	switch ch {
	case Alpha:
		return c.A()
	case Red:
		return c.R()
	case Green:
		return c.G()
	case Blue:
		return c.B()
	}
	panic(errors.Wrapf(ErrInvalidChannel, "cannot read %q as a single channel", ch))
}

// NRGBA returns the pixel as a standard library non-premultiplied color.
func (c ARGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color, returning alpha-premultiplied 16-bit
// channels the same way color.NRGBA does.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// String formats the pixel as "#AARRGGBB".
func (c ARGB) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}
