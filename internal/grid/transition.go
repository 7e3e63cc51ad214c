package grid

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EaseInOut maps linear progress t in [0,1] to an ease-in-out curve.
func EaseInOut(t float64) float64 {
	return float64(ease.InOutQuad(float32(Clamp01(t)), 0, 1, 1))
}

type track struct {
	tween   *gween.Tween
	to      float64
	current float64
	elapsed time.Duration
}

// Animator eases displayed offsets towards the engine's target offsets.
// It never writes back to the cells it follows.
type Animator struct {
	duration time.Duration
	tracks   []track
}

// NewAnimator returns an animator whose transitions last d.
func NewAnimator(d time.Duration) *Animator {
	return &Animator{duration: d}
}

// Reset discards every track and shows cells at their target offsets with
// no transition. Call it whenever the grid is rebuilt.
func (a *Animator) Reset(cells []Cell) {
	a.tracks = make([]track, len(cells))
	for i, c := range cells {
		a.tracks[i] = track{to: c.Offset, current: c.Offset}
	}
}

// Sync retargets every track to the matching cell's offset, starting each
// new transition from the currently displayed value.
func (a *Animator) Sync(cells []Cell) {
	if len(a.tracks) != len(cells) {
		a.Reset(cells)
		return
	}
	for i, c := range cells {
		tr := &a.tracks[i]
		if tr.to == c.Offset {
			continue
		}
		tr.to = c.Offset
		tr.elapsed = 0
		tr.tween = gween.New(float32(tr.current), float32(c.Offset), float32(a.duration.Seconds()), ease.InOutQuad)
	}
}

// Step advances every running transition by dt.
func (a *Animator) Step(dt time.Duration) {
	for i := range a.tracks {
		tr := &a.tracks[i]
		if tr.tween == nil {
			continue
		}
		tr.elapsed += dt
		if tr.elapsed >= a.duration {
			tr.current = tr.to
			tr.tween = nil
			continue
		}
		v, _ := tr.tween.Set(float32(tr.elapsed.Seconds()))
		tr.current = float64(v)
	}
}

// Value returns the displayed offset of cell i.
func (a *Animator) Value(i int) float64 {
	if i < 0 || i >= len(a.tracks) {
		return 0
	}
	return a.tracks[i].current
}

// Settled reports whether no transition is running.
func (a *Animator) Settled() bool {
	for _, tr := range a.tracks {
		if tr.tween != nil {
			return false
		}
	}
	return true
}

// Clamp01 limits v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
