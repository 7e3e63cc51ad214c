package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ripple-grid/internal/config"
	"github.com/iburimskiy/ripple-grid/internal/scene"
)

var backgroundColor = color.RGBA{R: 10, G: 12, B: 20, A: 255}

// Game adapts the scene to ebiten's Update/Draw/Layout loop.
type Game struct {
	scene *scene.Scene
	input pointer

	lastTick time.Time
	now      func() time.Time

	overlay bool
}

func NewGame() *Game {
	return &Game{
		scene: scene.New(),
		now:   time.Now,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.overlay = !g.overlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	now := g.now()
	dt := time.Second / 60
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick)
	}
	g.lastTick = now

	if p, moved := g.input.poll(); moved && g.scene.Ready() {
		g.scene.MoveInput(p)
	}
	g.scene.Tick(now, dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.scene.Lines(func(l scene.Line) {
		c := l.Bounds.Center()
		x := float32(c.X + l.Offset)
		top := float32(c.Y - config.LineLength/2)
		bottom := float32(c.Y + config.LineLength/2)

		r, gr, b := scene.Tint(l.Offset)
		vector.StrokeLine(screen, x, top, x, bottom, config.LineWidth, color.RGBA{R: r, G: gr, B: b, A: 255}, true)
	})

	if g.overlay {
		g.drawOverlay(screen)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	e := g.scene.Engine()
	rows, cols := e.Dims()
	w, h := g.scene.Size()
	in := e.Input()

	status := fmt.Sprintf("viewport %dx%d | cells %d (%d rows x %d cols) | input %.0f,%.0f | rebuilds %d",
		w, h, e.Len(), rows, cols, in.X, in.Y, g.scene.Populations())
	if g.scene.ResizePending() {
		status += " | resize pending"
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
	ebitenutil.DebugPrintAt(screen, "Space: overlay, F: fullscreen, Esc/Q: quit", 12, 28)
}

// Layout makes the viewport follow the window. The first call populates the
// grid, later size changes go through the resize debouncer.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(outsideWidth, outsideHeight, g.now())
	return outsideWidth, outsideHeight
}
