// Package term renders the ripple grid in a terminal. Every character cell
// stands for a fixed box of viewport pixels so the grid engine runs
// unchanged.
package term

import (
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/ripple-grid/internal/config"
	"github.com/iburimskiy/ripple-grid/internal/grid"
	"github.com/iburimskiy/ripple-grid/internal/scene"
)

const lineRune = '│'

// Renderer owns the tcell screen and the scene it draws.
type Renderer struct {
	screen tcell.Screen
	scene  *scene.Scene
}

// New initialises the terminal with mouse motion reporting enabled.
func New() (*Renderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen)
}

// NewWithScreen wraps an existing screen, e.g. a simulation screen.
func NewWithScreen(screen tcell.Screen) (*Renderer, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	r := &Renderer{screen: screen, scene: scene.New()}
	cols, rows := screen.Size()
	w, h := ViewportSize(cols, rows)
	r.scene.Resize(w, h, time.Now())
	return r, nil
}

// Fini restores the terminal.
func (r *Renderer) Fini() {
	r.screen.Fini()
}

func (r *Renderer) Scene() *scene.Scene { return r.scene }

// Run processes terminal events until the user quits. A goroutine only
// forwards polled events; all scene state is touched by this loop.
func (r *Renderer) Run() {
	ticker := time.NewTicker(config.FrameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !r.HandleEvent(ev, time.Now()) {
				return
			}

		case now := <-ticker.C:
			r.scene.Tick(now, now.Sub(last))
			last = now
			r.Draw()
		}
	}
}

// HandleEvent applies one terminal event and reports whether to keep running.
func (r *Renderer) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		r.scene.MoveInput(CharCenter(col, row))

	case *tcell.EventResize:
		cols, rows := ev.Size()
		w, h := ViewportSize(cols, rows)
		log.Printf("term: resize to %dx%d chars (%dx%d px)", cols, rows, w, h)
		r.screen.Sync()
		r.scene.Resize(w, h, now)
	}
	return true
}

// Draw paints every cell's line at its displayed offset.
func (r *Renderer) Draw() {
	r.screen.Clear()
	r.scene.Lines(func(l scene.Line) {
		c := l.Bounds.Center()
		cr, cg, cb := scene.Tint(l.Offset)
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(cr), int32(cg), int32(cb)))

		col, top := CharAt(grid.Point{X: c.X + l.Offset, Y: c.Y - config.LineLength/2})
		_, bottom := CharAt(grid.Point{X: c.X, Y: c.Y + config.LineLength/2})
		for row := top; row < bottom; row++ {
			r.screen.SetContent(col, row, lineRune, nil, style)
		}
	})
	r.screen.Show()
}

// ViewportSize converts a terminal size in characters to viewport pixels.
func ViewportSize(cols, rows int) (int, int) {
	return cols * config.TermCharWidth, rows * config.TermCharHeight
}

// CharCenter returns the viewport pixel at the center of a character cell.
func CharCenter(col, row int) grid.Point {
	return grid.Point{
		X: float64(col*config.TermCharWidth) + config.TermCharWidth/2.0,
		Y: float64(row*config.TermCharHeight) + config.TermCharHeight/2.0,
	}
}

// CharAt returns the character cell containing a viewport pixel.
func CharAt(p grid.Point) (col, row int) {
	col = int(math.Floor(p.X / config.TermCharWidth))
	row = int(math.Floor(p.Y / config.TermCharHeight))
	return col, row
}
