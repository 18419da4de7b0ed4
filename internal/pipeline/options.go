package pipeline

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Sampling is the number of columns skipped after each visited column
// during a sweep. Zero visits every column; negative values behave as zero.
type Sampling int

const (
	// FullSampling visits every coordinate.
	FullSampling Sampling = 0
	// HalfSampling visits every second column.
	HalfSampling Sampling = 1
	// QuarterSampling visits every fourth column.
	QuarterSampling Sampling = 3
)

// stride converts the skip count into the x-loop increment.
func (s Sampling) stride() int {
	if s < 0 {
		return 1
	}
	return int(s) + 1
}

// Option configures a Pipeline at construction time.
type Option func(*Pipeline)

// WithSampling sets the column skip used by Process sweeps.
func WithSampling(s Sampling) Option {
	return func(p *Pipeline) {
		p.sampling = s
	}
}

// WithLogger routes the pipeline's debug and save logging to log.
// Without it the pipeline stays silent.
func WithLogger(log *zap.Logger) Option {
	return func(p *Pipeline) {
		p.log = log
	}
}

// WithFs redirects SaveEach output to an alternate filesystem.
func WithFs(fs afero.Fs) Option {
	return func(p *Pipeline) {
		p.fs = fs
	}
}
