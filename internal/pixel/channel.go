package pixel

import (
	"math/bits"
	"strings"
)

// Channel selects one or more of the four ARGB channels as a bit-flag set.
// Selectors combine with the | operator: Red|Green selects two channels,
// RGB selects the three color channels, ChannelARGB selects all four.
type Channel uint8

const (
	// Alpha selects the alpha (opacity) channel.
	Alpha Channel = 1 << iota
	// Red selects the red channel.
	Red
	// Green selects the green channel.
	Green
	// Blue selects the blue channel.
	Blue
)

const (
	// ChannelNone selects no channels. Operations given ChannelNone leave
	// every channel untouched.
	ChannelNone Channel = 0

	// RGB selects the three color channels, leaving alpha alone.
	RGB = Red | Green | Blue

	// ChannelARGB selects all four channels.
	ChannelARGB = Alpha | RGB
)

// Has reports whether every channel in sub is part of the selector.
func (ch Channel) Has(sub Channel) bool {
	return ch&sub == sub
}

// Single reports whether exactly one channel is selected. Operations that
// read one channel value, such as Shift's source, require this shape.
func (ch Channel) Single() bool {
	return ch.Count() == 1
}

// Count returns the number of selected channels.
func (ch Channel) Count() int {
	return bits.OnesCount8(uint8(ch))
}

// String renders the selector in ARGB order, e.g. "rgb" or "argb";
// ChannelNone renders as "none".
func (ch Channel) String() string {
	if ch == ChannelNone {
		return "none"
	}
	var sb strings.Builder
	if ch.Has(Alpha) {
		sb.WriteByte('a')
	}
	if ch.Has(Red) {
		sb.WriteByte('r')
	}
	if ch.Has(Green) {
		sb.WriteByte('g')
	}
	if ch.Has(Blue) {
		sb.WriteByte('b')
	}
	return sb.String()
}

// ParseChannel maps a channel name to its selector, case-insensitively:
// "r" is Red, "g" is Green, "b" is Blue, "a" is Alpha and "rgb" is the RGB
// set. Anything else yields ChannelNone rather than an error, so callers can
// treat unrecognized input as "select nothing".
func ParseChannel(s string) Channel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r":
		return Red
	case "g":
		return Green
	case "b":
		return Blue
	case "a":
		return Alpha
	case "rgb":
		return RGB
	}
	return ChannelNone
}
