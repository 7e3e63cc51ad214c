package scene

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/ripple-grid/internal/config"
	"github.com/iburimskiy/ripple-grid/internal/grid"
)

const (
	baseHue  = 210
	hueShift = 150
)

// Tint returns the line colour for a displayed offset. Resting lines are a
// dim blue; displaced lines shift hue and brighten with displacement.
func Tint(offset float64) (uint8, uint8, uint8) {
	k := grid.Clamp01(math.Abs(offset) / config.MaxMoveDistance)
	return colorful.Hsv(math.Mod(baseHue+k*hueShift, 360), 0.5+0.4*k, 0.55+0.45*k).RGB255()
}
