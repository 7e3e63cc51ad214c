package scene

import "github.com/iburimskiy/ripple-grid/internal/grid"

// InputTracker turns per-frame pointer samples into move events.
type InputTracker struct {
	last grid.Point
	seen bool
}

// Observe picks the input position for a frame: the first active touch if
// any, else the cursor. It reports a move only when the position differs
// from the previous frame.
func (t *InputTracker) Observe(touches []grid.Point, cursor grid.Point) (grid.Point, bool) {
	pos := cursor
	if len(touches) > 0 {
		pos = touches[0]
	}
	if t.seen && pos == t.last {
		return pos, false
	}
	t.last, t.seen = pos, true
	return pos, true
}
