package pipeline

import (
	"github.com/ironsheep/pixel-pipeline/internal/pixel"
)

// registry tracks the primary buffer and the named working buffers of a
// pipeline. Named buffers are created lazily at the primary's size; the
// empty name always resolves to the primary and is never stored.
type registry struct {
	primary *pixel.Buffer
	named   map[string]*pixel.Buffer
	order   []string
}

func newRegistry(primary *pixel.Buffer) *registry {
	return &registry{
		primary: primary,
		named:   make(map[string]*pixel.Buffer),
	}
}

// resolve returns the buffer for name, creating it on first reference.
func (r *registry) resolve(name string) *pixel.Buffer {
	if name == "" {
		return r.primary
	}
	if buf, ok := r.named[name]; ok {
		return buf
	}
	buf := pixel.NewBuffer(r.primary.Width(), r.primary.Height())
	r.named[name] = buf
	r.order = append(r.order, name)
	return buf
}

// names returns the named buffers in creation order.
func (r *registry) names() []string {
	return append([]string(nil), r.order...)
}

// freeAll releases the primary and every named buffer.
func (r *registry) freeAll() {
	r.primary.Free()
	for _, name := range r.order {
		r.named[name].Free()
	}
}
