package pixel

import "github.com/pkg/errors"

// Contract violations. These are raised by panic, not returned: the engine
// treats them as fatal programming errors per the pipeline's fail-fast
// policy. They are declared as sentinels so tests (and any last-resort
// recover at a process boundary) can identify them with errors.Is.
var (
	// ErrInvalidDimension reports a buffer created with a negative width
	// or height.
	ErrInvalidDimension = errors.New("pixel: invalid buffer dimension")

	// ErrOutOfRange reports a coordinate access outside buffer bounds.
	ErrOutOfRange = errors.New("pixel: coordinate out of range")

	// ErrInvalidChannel reports a channel selector whose shape is not
	// valid for the requested operation, such as a multi-channel selector
	// where exactly one channel is required.
	ErrInvalidChannel = errors.New("pixel: invalid channel selector")
)
