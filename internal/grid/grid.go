// Package grid computes the ripple grid: which cells fit the viewport and how
// far each cell's line is pushed sideways by the current input position.
package grid

import (
	"log"
	"math"

	"github.com/iburimskiy/ripple-grid/internal/config"
)

// Point is a coordinate in viewport pixel space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box in viewport pixel space.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Cell is one grid slot. Its position comes from the layout, not the cell.
type Cell struct {
	Width  float64
	Height float64
	Offset float64
}

// Engine owns the grid collection and the tracked input position.
type Engine struct {
	rowHeight int
	colWidth  int
	radius    float64
	maxMove   float64

	origin Point
	rows   int
	cols   int
	cells  []Cell
	input  Point
}

// NewEngine returns an engine using the compiled-in cell size and
// interaction parameters.
func NewEngine() *Engine {
	return &Engine{
		rowHeight: config.RowHeight,
		colWidth:  config.ColWidth,
		radius:    config.InteractionRadius,
		maxMove:   config.MaxMoveDistance,
	}
}

// Populate discards every existing cell and creates one cell per slot that
// fits in a width x height viewport, then recomputes offsets for the current
// input position. The returned slice is owned by the engine.
func (e *Engine) Populate(width, height int) []Cell {
	rows, cols := 0, 0
	if height > 0 {
		rows = height / e.rowHeight
	}
	if width > 0 {
		cols = width / e.colWidth
	}

	e.rows, e.cols = rows, cols
	e.cells = make([]Cell, rows*cols)
	for i := range e.cells {
		e.cells[i] = Cell{Width: float64(e.colWidth), Height: float64(e.rowHeight)}
	}
	log.Printf("grid: populated %dx%d viewport with %d cells (%d rows, %d cols)", width, height, len(e.cells), rows, cols)

	e.UpdatePositions()
	return e.cells
}

// UpdatePositions sets every cell's offset from the distance between its
// center and the tracked input position. Bounds are read from the layout on
// every call.
func (e *Engine) UpdatePositions() {
	for i := range e.cells {
		c := e.Bounds(i).Center()
		e.cells[i].Offset = Offset(e.input.X-c.X, e.input.Y-c.Y, e.radius, e.maxMove)
	}
}

// MoveInput records a new pointer or touch position and recomputes offsets.
func (e *Engine) MoveInput(p Point) {
	e.input = p
	e.UpdatePositions()
}

// Input returns the tracked input position.
func (e *Engine) Input() Point { return e.input }

// Cells returns the current grid collection.
func (e *Engine) Cells() []Cell { return e.cells }

// Len returns the number of cells.
func (e *Engine) Len() int { return len(e.cells) }

// Dims returns the row and column counts of the last population.
func (e *Engine) Dims() (rows, cols int) { return e.rows, e.cols }

// SetOrigin moves the top-left corner of the grid. Offsets are not
// recomputed until the next update.
func (e *Engine) SetOrigin(p Point) { e.origin = p }

// Bounds returns the on-screen box of cell i, laid out row-major from the
// origin. The horizontal offset is not included.
func (e *Engine) Bounds(i int) Rect {
	if e.cols == 0 {
		return Rect{}
	}
	row, col := i/e.cols, i%e.cols
	return Rect{
		X: e.origin.X + float64(col*e.colWidth),
		Y: e.origin.Y + float64(row*e.rowHeight),
		W: float64(e.colWidth),
		H: float64(e.rowHeight),
	}
}

// Offset returns the horizontal displacement of a cell whose center is
// (dx, dy) away from the input, where dx = input.x - center.x. Cells at or
// beyond radius stay put; closer cells move away from the input along x,
// up to maxMove. A cell with dx == 0 never moves.
func Offset(dx, dy, radius, maxMove float64) float64 {
	distance := math.Sqrt(dx*dx + dy*dy)
	if distance >= radius {
		return 0
	}
	influence := 1 - distance/radius
	return -sign(dx) * influence * maxMove
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
