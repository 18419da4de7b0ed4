// Package pixel provides the packed-ARGB pixel buffer and the channel
// algebra that pipeline operations are built from.
//
// A Buffer is a dense, fixed-size grid of 32-bit ARGB values. The algebra
// functions (Extract, Invert, SetValue, Shift, Merge) are pure: they map one
// or two existing ARGB values plus a channel selector to a new ARGB value and
// never touch a buffer themselves. Higher-level packages compose them into
// queued per-coordinate operations.
//
// # Coordinate System
//
// Buffer coordinates are 0-based with origin at the top-left:
//   - X: horizontal position, 0 <= x < Width
//   - Y: vertical position, 0 <= y < Height
//   - Storage is row-major, addressed as x + y*Width
//
// # Packed Color Representation
//
// An ARGB value packs four non-premultiplied 8-bit channels into one uint32
// as A<<24 | R<<16 | G<<8 | B, matching the external raster type the buffer
// converts to and from (image.NRGBA). ARGB implements color.Color, so a
// Buffer can be handed directly to standard encoders.
//
// # Channel Selectors
//
// Channel is a bit-flag set over Alpha, Red, Green and Blue. The combinations
// RGB (three color channels) and ChannelARGB (all four) are predeclared.
// Operations that read a single channel value, such as Shift's source,
// require a selector with exactly one bit set.
//
// # Error Handling
//
// Invalid requests are programming errors, not runtime conditions: creating
// a buffer with negative dimensions, accessing a coordinate outside the
// buffer, or supplying a multi-channel selector where a single channel is
// required all panic with an error wrapping ErrInvalidDimension,
// ErrOutOfRange or ErrInvalidChannel. Nothing in this package recovers; the
// calling code must not issue the invalid request. The arithmetic itself
// never faults: every channel computation clamps to [0,255] rather than
// wrapping.
//
// # Thread Safety
//
// Buffers are plain memory with no internal locking. The algebra functions
// are stateless and safe to call concurrently; a Buffer must not be mutated
// from multiple goroutines at once.
package pixel
