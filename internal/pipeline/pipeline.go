package pipeline

import (
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/ironsheep/pixel-pipeline/internal/codec"
	"github.com/ironsheep/pixel-pipeline/internal/pixel"
)

// Pipeline is the deferred transform engine. Builder methods queue work;
// Process executes it. See the package documentation for the execution
// model. A Pipeline must not be shared between goroutines.
type Pipeline struct {
	reg      *registry
	queue    opQueue
	sampling Sampling
	log      *zap.Logger
	fs       afero.Fs
}

// New wraps an existing buffer as the pipeline's primary. The pipeline
// takes ownership; Close frees it.
func New(src *pixel.Buffer, opts ...Option) *Pipeline {
	p := &Pipeline{
		reg: newRegistry(src),
		log: zap.NewNop(),
		fs:  afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FromImage clones img into a fresh primary buffer.
func FromImage(img image.Image, opts ...Option) *Pipeline {
	return New(pixel.FromImage(img), opts...)
}

// Decode builds a pipeline from encoded image bytes.
func Decode(data []byte, opts ...Option) (*Pipeline, error) {
	buf, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load pipeline source: %w", err)
	}
	return New(buf, opts...), nil
}

// Extract queues a copy of the selected channels of source into output;
// output's unselected channels are left alone.
func (p *Pipeline) Extract(source, output string, ch pixel.Channel) *Pipeline {
	src, dst := p.reg.resolve(source), p.reg.resolve(output)
	p.queue.add(func(x, y int) bool {
		dst.Set(x, y, pixel.Extract(src.Get(x, y), dst.Get(x, y), ch))
		return true
	})
	return p
}

// Copy is Extract under the name transform scripts tend to use.
func (p *Pipeline) Copy(source, output string, ch pixel.Channel) *Pipeline {
	return p.Extract(source, output, ch)
}

// Invert queues an in-place inversion of the selected channels of name.
func (p *Pipeline) Invert(name string, ch pixel.Channel) *Pipeline {
	buf := p.reg.resolve(name)
	p.queue.add(func(x, y int) bool {
		buf.Set(x, y, pixel.Invert(buf.Get(x, y), ch))
		return true
	})
	return p
}

// SetValue queues a constant fill of the selected channels of name.
// The value is clamped to [0,255].
func (p *Pipeline) SetValue(name string, ch pixel.Channel, value int) *Pipeline {
	buf := p.reg.resolve(name)
	p.queue.add(func(x, y int) bool {
		buf.Set(x, y, pixel.SetValue(buf.Get(x, y), ch, value))
		return true
	})
	return p
}

// Set is SetValue on the primary buffer.
func (p *Pipeline) Set(ch pixel.Channel, value int) *Pipeline {
	return p.SetValue("", ch, value)
}

// Merge queues a saturating per-channel add of a and b. The sum lands in
// output; an empty output writes back into b.
func (p *Pipeline) Merge(a, b, output string) *Pipeline {
	srcA, srcB := p.reg.resolve(a), p.reg.resolve(b)
	dst := srcB
	if output != "" {
		dst = p.reg.resolve(output)
	}
	p.queue.add(func(x, y int) bool {
		dst.Set(x, y, pixel.Merge(srcA.Get(x, y), srcB.Get(x, y)))
		return true
	})
	return p
}

// Shift queues a broadcast of one source channel into every channel named
// by to. The from selector must be a single channel; anything else panics
// ErrInvalidChannel here, before the operation is queued.
func (p *Pipeline) Shift(source string, from pixel.Channel, output string, to pixel.Channel) *Pipeline {
	if !from.Single() {
		panic(errors.Wrapf(pixel.ErrInvalidChannel, "shift source %q must name exactly one channel", from))
	}
	src, dst := p.reg.resolve(source), p.reg.resolve(output)
	p.queue.add(func(x, y int) bool {
		dst.Set(x, y, pixel.Shift(src.Get(x, y), from, dst.Get(x, y), to))
		return true
	})
	return p
}

// Custom queues an arbitrary blend of source into output.
func (p *Pipeline) Custom(source, output string, fn pixel.BlendFunc) *Pipeline {
	src, dst := p.reg.resolve(source), p.reg.resolve(output)
	p.queue.add(func(x, y int) bool {
		dst.Set(x, y, fn(src.Get(x, y), dst.Get(x, y)))
		return true
	})
	return p
}

// Grayscale queues a luminance conversion of source into output. Each output
// pixel carries the source's brightness in R, G and B; alpha is the source's
// own when keepAlpha is set and zero otherwise.
func (p *Pipeline) Grayscale(source, output string, keepAlpha bool) *Pipeline {
	src, dst := p.reg.resolve(source), p.reg.resolve(output)
	p.queue.add(func(x, y int) bool {
		c := src.Get(x, y)
		v := pixel.Brightness(c)
		var a uint8
		if keepAlpha {
			a = c.A()
		}
		dst.Set(x, y, pixel.FromARGB(a, v, v, v))
		return true
	})
	return p
}

// ClearAlpha queues a fill of fully-transparent pixels in name with a gray
// constant. The value is clamped to [0,255].
func (p *Pipeline) ClearAlpha(name string, value int) *Pipeline {
	return p.ClearAlphaColor(name, pixel.SetValue(0, pixel.RGB, value))
}

// ClearAlphaColor queues a fill of fully-transparent pixels in name with
// c's RGB values. The pixel keeps its own alpha, so the fill stays invisible
// until something else raises the alpha channel.
func (p *Pipeline) ClearAlphaColor(name string, c pixel.ARGB) *Pipeline {
	buf := p.reg.resolve(name)
	p.queue.add(func(x, y int) bool {
		cur := buf.Get(x, y)
		if cur.A() != 0 {
			return true
		}
		buf.Set(x, y, pixel.Extract(c, cur, pixel.RGB))
		return true
	})
	return p
}

// Process runs every queued operation over the primary's coordinate space in
// one sweep. The queue is kept: calling Process again re-applies all
// operations to the buffers as they now are, so additive operations compound.
func (p *Pipeline) Process() *Pipeline {
	start := time.Now()
	visited := p.queue.sweep(p.reg.primary.Width(), p.reg.primary.Height(), p.sampling.stride())
	p.log.With(
		zap.Int("operations", p.queue.size()),
		zap.Int("visited", visited),
		zap.Duration("took", time.Since(start)),
	).Debug("sweep done")
	return p
}

// Reset drops all queued operations. Buffer contents are untouched.
func (p *Pipeline) Reset() *Pipeline {
	p.queue.reset()
	return p
}

// Primary returns the pipeline's primary buffer.
func (p *Pipeline) Primary() *pixel.Buffer {
	return p.reg.primary
}

// Buffer returns the named buffer, creating it at the primary's size if this
// is the first reference. The empty name returns the primary.
func (p *Pipeline) Buffer(name string) *pixel.Buffer {
	return p.reg.resolve(name)
}

// Names lists the named buffers in creation order. The primary is not
// included.
func (p *Pipeline) Names() []string {
	return p.reg.names()
}

// Encode serializes the named buffer in the given format.
func (p *Pipeline) Encode(name string, f codec.Format) ([]byte, error) {
	return codec.Encode(p.reg.resolve(name), f)
}

// SaveEach writes every named buffer to the filesystem. The template must
// contain exactly one %s placeholder, replaced by each buffer's name; with
// autoExt the template's extension is first swapped for the format's
// canonical one. Files are written in buffer creation order.
func (p *Pipeline) SaveEach(template string, f codec.Format, autoExt bool) error {
	if autoExt {
		template = codec.ReplaceExt(template, f)
	}
	if err := codec.ValidateTemplate(template); err != nil {
		return err
	}

	for _, name := range p.reg.names() {
		file, err := codec.ExpandTemplate(template, name)
		if err != nil {
			return err
		}

		data, err := p.Encode(name, f)
		if err != nil {
			return fmt.Errorf("failed to encode buffer %q: %w", name, err)
		}

		dir := filepath.Dir(file)
		if exists, err := afero.DirExists(p.fs, dir); err != nil {
			return err
		} else if !exists {
			if err2 := p.fs.MkdirAll(dir, 0755); err2 != nil {
				return err2
			}
		}

		if err := afero.WriteFile(p.fs, file, data, 0644); err != nil {
			return fmt.Errorf("failed to write %q: %w", file, err)
		}

		p.log.With(
			zap.String("buffer", name),
			zap.String("file", file),
			zap.String("size", bytesize.New(float64(len(data))).String()),
		).Info("buffer saved")
	}
	return nil
}

// Close frees the primary and every named buffer. The pipeline must not be
// used afterwards.
func (p *Pipeline) Close() error {
	p.reg.freeAll()
	return nil
}
