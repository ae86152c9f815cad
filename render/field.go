package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/vmath"
)

// Arrow glyphs indexed by screen octant, 0 = right, counter-clockwise
var arrowGlyphs = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// FieldScales normalizes sample magnitudes to [0,1] on a log scale
// The strongest sample maps to 1; an all-zero grid maps to 0
func FieldScales(samples []engine.FieldSample) []float64 {
	levels := make([]float64, len(samples))
	maxLog := 0.0
	for i, s := range samples {
		levels[i] = math.Log1p(r2.Norm(s.Force))
		maxLog = max(maxLog, levels[i])
	}
	if maxLog == 0 {
		clear(levels)
		return levels
	}
	for i := range levels {
		levels[i] /= maxLog
	}
	return levels
}

// ArrowGlyph picks the arrow pointing along f
// World Y grows downward, screen arrows assume Y up
func ArrowGlyph(f r2.Vec) rune {
	return arrowGlyphs[vmath.Octant(math.Atan2(-f.Y, f.X))]
}
