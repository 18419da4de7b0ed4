// Package pipeline implements a deferred pixel-processing engine over named
// ARGB buffers.
//
// A Pipeline is built around one primary buffer (the decoded source image)
// and any number of equally-sized named buffers that are created on first
// reference. Builder methods such as Extract, Invert and Merge do not touch
// pixels when called; each one captures its operand buffers immediately and
// appends a per-coordinate closure to an operation queue. Nothing executes
// until Process runs the queue in a single sweep.
//
// # Execution Model
//
// Process visits coordinates column by column: x is the outer loop, y the
// inner one, so a full sweep touches (0,0), (0,1), ... (0,H-1), (1,0) and so
// on. At every visited coordinate the queued operations run in the order
// they were enqueued, which makes later operations observe the writes of
// earlier ones at that same coordinate during the same sweep. The sampling
// option widens the x step to trade accuracy for speed; y is always dense.
//
// The queue survives Process. Running Process again re-applies every queued
// operation to the current buffer contents, so non-idempotent operations
// (Merge, Invert on itself) compound. Reset clears the queue without
// touching any buffer.
//
// # Buffer Names
//
// The empty string names the primary buffer. Any other name lazily creates
// a zeroed buffer of the primary's size on first use, whether the use is a
// read or a write. Names reports the named buffers in creation order, which
// is also the order SaveEach writes files in.
//
// # Scans
//
// AverageChannel, AverageColor, CommonColor and IsGrayscale are immediate
// whole-buffer analyses built on the same sweep machinery. They run their
// own private queue and leave the pipeline's queue alone.
//
// # Concurrency
//
// A Pipeline confines itself to one goroutine. Buffers are plain memory
// with no internal locking, and operation closures run unsynchronized.
package pipeline
