package pipeline

// operation is a deferred unit of per-coordinate work. The return value only
// matters to sweepUntil, where false stops the sweep after the current
// coordinate finishes; sweep ignores it.
type operation func(x, y int) bool

// opQueue holds operations in enqueue order. The zero value is ready to use.
type opQueue struct {
	ops []operation
}

func (q *opQueue) add(op operation) {
	q.ops = append(q.ops, op)
}

func (q *opQueue) reset() {
	q.ops = nil
}

func (q *opQueue) size() int {
	return len(q.ops)
}

// sweep applies every operation at every sampled coordinate, column by
// column with x as the outer loop. It returns the number of coordinates
// visited.
func (q *opQueue) sweep(width, height, stride int) int {
	visited := 0
	for x := 0; x < width; x += stride {
		for y := 0; y < height; y++ {
			visited++
			for _, op := range q.ops {
				op(x, y)
			}
		}
	}
	return visited
}

// sweepUntil is a dense sweep that stops early once any operation returns
// false. All operations still run at the stopping coordinate; only the
// remaining coordinates are abandoned. It returns the number of coordinates
// visited.
func (q *opQueue) sweepUntil(width, height int) int {
	visited := 0
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			visited++
			keep := true
			for _, op := range q.ops {
				if !op(x, y) {
					keep = false
				}
			}
			if !keep {
				return visited
			}
		}
	}
	return visited
}
