package pixel

import "github.com/pkg/errors"

// BlendFunc combines a source and a destination pixel into a result pixel.
// It is the escape hatch for any per-pixel operation the named algebra
// functions do not cover; the pipeline's Custom operation applies one at
// every coordinate.
type BlendFunc func(src, dst ARGB) ARGB

// Extract copies the selected channels of src into dst, leaving dst's other
// channels unchanged. Extracting RGB copies the three color channels from
// src while dst keeps its own alpha; extracting ChannelARGB makes the
// result identical to src.
func Extract(src, dst ARGB, ch Channel) ARGB {
	a, r, g, b := dst.A(), dst.R(), dst.G(), dst.B()
	if ch.Has(Alpha) {
		a = src.A()
	}
	if ch.Has(Red) {
		r = src.R()
	}
	if ch.Has(Green) {
		g = src.G()
	}
	if ch.Has(Blue) {
		b = src.B()
	}
	return FromARGB(a, r, g, b)
}

// Invert replaces each selected channel value v with 255-v; unselected
// channels pass through unchanged. Applying Invert twice with the same
// selector restores the original value.
func Invert(src ARGB, ch Channel) ARGB {
	a, r, g, b := src.A(), src.R(), src.G(), src.B()
	if ch.Has(Alpha) {
		a = 255 - a
	}
	if ch.Has(Red) {
		r = 255 - r
	}
	if ch.Has(Green) {
		g = 255 - g
	}
	if ch.Has(Blue) {
		b = 255 - b
	}
	return FromARGB(a, r, g, b)
}

// SetValue replaces each selected channel with a constant. The value is
// clamped to [0,255] first; selecting RGB sets red, green and blue to the
// same constant without touching alpha.
func SetValue(src ARGB, ch Channel, value int) ARGB {
	v := clamp255(value)
	a, r, g, b := src.A(), src.R(), src.G(), src.B()
	if ch.Has(Alpha) {
		a = v
	}
	if ch.Has(Red) {
		r = v
	}
	if ch.Has(Green) {
		g = v
	}
	if ch.Has(Blue) {
		b = v
	}
	return FromARGB(a, r, g, b)
}

// Shift reads exactly one channel from src and writes that value into every
// channel in the to set of dst: shifting from Red into RGB duplicates src's
// red value into the red, green and blue channels of the result. It panics
// with ErrInvalidChannel unless from has exactly one bit set; pipelines
// perform that check once at enqueue time, before any sweep runs.
func Shift(src ARGB, from Channel, dst ARGB, to Channel) ARGB {
	if !from.Single() {
		panic(errors.Wrapf(ErrInvalidChannel, "shift source %q must name exactly one channel", from))
	}
	return SetValue(dst, to, int(src.Channel(from)))
}

// Merge adds a and b channel by channel, clamping each of the four sums to
// 255. Merging a buffer with itself therefore brightens it toward white
// rather than wrapping around.
func Merge(a, b ARGB) ARGB {
	return FromARGB(
		satAdd(a.A(), b.A()),
		satAdd(a.R(), b.R()),
		satAdd(a.G(), b.G()),
		satAdd(a.B(), b.B()),
	)
}

// Brightness computes the perceptual brightness of the pixel's color
// channels using integer ITU-R BT.601 weights (299R + 587G + 114B)/1000.
// Alpha does not participate.
func Brightness(c ARGB) uint8 {
	return uint8((299*int(c.R()) + 587*int(c.G()) + 114*int(c.B())) / 1000)
}

// satAdd adds two channel values, saturating at 255.
func satAdd(x, y uint8) uint8 {
	s := int(x) + int(y)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// clamp255 constrains an arbitrary int to a valid channel value.
func clamp255(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
