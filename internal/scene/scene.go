// Package scene drives the grid engine from front-end events: the first
// layout, debounced resizes, pointer moves and frame ticks.
package scene

import (
	"log"
	"time"

	"github.com/iburimskiy/ripple-grid/internal/config"
	"github.com/iburimskiy/ripple-grid/internal/debounce"
	"github.com/iburimskiy/ripple-grid/internal/grid"
)

// Scene is not safe for concurrent use; front ends call it from one loop.
type Scene struct {
	engine *grid.Engine
	anim   *grid.Animator
	resize *debounce.Debouncer

	ready         bool
	width, height int
	popW, popH    int
	populations   int
}

func New() *Scene {
	return &Scene{
		engine: grid.NewEngine(),
		anim:   grid.NewAnimator(config.TransitionDuration),
		resize: debounce.New(config.ResizeDebounce),
	}
}

// Resize reports the viewport size. The first call populates the grid at
// once; later calls with a new size are debounced and only the size of the
// last signal in a burst is used. A burst that ends on the size already on
// screen cancels the pending repopulation.
func (s *Scene) Resize(width, height int, now time.Time) {
	if !s.ready {
		s.ready = true
		s.width, s.height = width, height
		s.populate()
		return
	}
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	if s.resize.Pending() && width == s.popW && height == s.popH {
		s.resize.Cancel()
		return
	}
	s.resize.Signal(now)
}

// MoveInput tracks a pointer or touch position and recomputes every offset.
func (s *Scene) MoveInput(p grid.Point) {
	s.engine.MoveInput(p)
	s.anim.Sync(s.engine.Cells())
}

// Tick runs a pending repopulation whose quiet period has passed and
// advances the offset transitions by dt.
func (s *Scene) Tick(now time.Time, dt time.Duration) {
	if s.resize.Fire(now) {
		s.populate()
	}
	s.anim.Step(dt)
}

func (s *Scene) populate() {
	s.engine.Populate(s.width, s.height)
	s.engine.UpdatePositions()
	s.anim.Reset(s.engine.Cells())
	s.popW, s.popH = s.width, s.height
	s.populations++
	log.Printf("scene: population #%d at %dx%d", s.populations, s.width, s.height)
}

// Line describes one cell for drawing.
type Line struct {
	Bounds grid.Rect
	Target float64
	Offset float64
}

// Lines calls fn for every cell with its bounds, target offset and the
// currently displayed (eased) offset.
func (s *Scene) Lines(fn func(Line)) {
	for i, c := range s.engine.Cells() {
		fn(Line{Bounds: s.engine.Bounds(i), Target: c.Offset, Offset: s.anim.Value(i)})
	}
}

func (s *Scene) Engine() *grid.Engine { return s.engine }

// Ready reports whether the first population has happened.
func (s *Scene) Ready() bool { return s.ready }

// Populations returns how many times the grid has been rebuilt.
func (s *Scene) Populations() int { return s.populations }

// Size returns the viewport size most recently reported.
func (s *Scene) Size() (width, height int) { return s.width, s.height }

// ResizePending reports whether a repopulation is waiting to run.
func (s *Scene) ResizePending() bool { return s.resize.Pending() }

// Settled reports whether every displayed offset has reached its target.
func (s *Scene) Settled() bool { return s.anim.Settled() }
