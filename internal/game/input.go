package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/ripple-grid/internal/grid"
	"github.com/iburimskiy/ripple-grid/internal/scene"
)

// pointer samples ebiten's touch and cursor state once per frame.
type pointer struct {
	touchIDs []ebiten.TouchID
	touches  []grid.Point
	tracker  scene.InputTracker
}

func (p *pointer) poll() (grid.Point, bool) {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	p.touches = p.touches[:0]
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		p.touches = append(p.touches, grid.Point{X: float64(x), Y: float64(y)})
	}
	cx, cy := ebiten.CursorPosition()
	return p.tracker.Observe(p.touches, grid.Point{X: float64(cx), Y: float64(cy)})
}
