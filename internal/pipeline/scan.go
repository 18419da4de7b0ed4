package pipeline

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/ironsheep/pixel-pipeline/internal/pixel"
)

// Scan analyses run one immediate sweep with a private queue and per-call
// accumulators. Nothing is retained between calls.

func samplingArg(s []Sampling) Sampling {
	if len(s) == 0 {
		return FullSampling
	}
	return s[0]
}

// AverageChannel returns the mean value of one channel across the sampled
// coordinates, truncated toward zero. The selector must name exactly one
// channel; anything else panics ErrInvalidChannel. Empty sweeps return 0.
func AverageChannel(buf *pixel.Buffer, ch pixel.Channel, sampling ...Sampling) int {
	if !ch.Single() {
		panic(errors.Wrapf(pixel.ErrInvalidChannel, "average requires exactly one channel, got %q", ch))
	}

	var q opQueue
	sum := 0
	q.add(func(x, y int) bool {
		sum += int(buf.Get(x, y).Channel(ch))
		return true
	})

	visited := q.sweep(buf.Width(), buf.Height(), samplingArg(sampling).stride())
	if visited == 0 {
		return 0
	}
	return sum / visited
}

// AverageColor returns the channel-wise mean color of the sampled
// coordinates. Each channel accumulates independently in the same sweep.
// Empty sweeps return the zero color.
func AverageColor(buf *pixel.Buffer, sampling ...Sampling) pixel.ARGB {
	var q opQueue
	var sums [4]int
	for i, ch := range []pixel.Channel{pixel.Alpha, pixel.Red, pixel.Green, pixel.Blue} {
		idx, sel := i, ch
		q.add(func(x, y int) bool {
			sums[idx] += int(buf.Get(x, y).Channel(sel))
			return true
		})
	}

	visited := q.sweep(buf.Width(), buf.Height(), samplingArg(sampling).stride())
	if visited == 0 {
		return 0
	}
	return pixel.FromARGB(
		uint8(sums[0]/visited),
		uint8(sums[1]/visited),
		uint8(sums[2]/visited),
		uint8(sums[3]/visited),
	)
}

// CommonColor returns the most frequent exact ARGB value among the sampled
// coordinates. Ties go to the color seen first in sweep order. Empty sweeps
// return the zero color.
func CommonColor(buf *pixel.Buffer, sampling ...Sampling) pixel.ARGB {
	var q opQueue
	counts := make(map[pixel.ARGB]int)
	var order []pixel.ARGB
	q.add(func(x, y int) bool {
		c := buf.Get(x, y)
		if _, seen := counts[c]; !seen {
			order = append(order, c)
		}
		counts[c]++
		return true
	})

	q.sweep(buf.Width(), buf.Height(), samplingArg(sampling).stride())
	if len(order) == 0 {
		return 0
	}
	return lo.MaxBy(order, func(a, b pixel.ARGB) bool {
		return counts[a] > counts[b]
	})
}

// IsGrayscale reports whether every pixel is a neutral gray. Pixels with
// alpha 0 never count against the color test. With testAlpha the buffer must
// also be fully opaque. The sweep stops at the first offending pixel.
func IsGrayscale(buf *pixel.Buffer, testAlpha bool) bool {
	var q opQueue
	gray := true
	q.add(func(x, y int) bool {
		c := buf.Get(x, y)
		if testAlpha && c.A() != 255 {
			gray = false
			return false
		}
		if c.A() == 0 {
			return true
		}
		if c.R() != c.G() || c.G() != c.B() {
			gray = false
			return false
		}
		return true
	})

	q.sweepUntil(buf.Width(), buf.Height())
	return gray
}
