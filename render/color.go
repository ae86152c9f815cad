package render

import "github.com/gdamore/tcell/v2"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RGBBackground = RGB{0, 0, 0}
	RGBBody       = RGB{235, 235, 235}
	RGBStationary = RGB{255, 200, 80}
	RGBTrail      = RGB{90, 140, 255}
	RGBPreview    = RGB{120, 255, 140}
	RGBPreviewHit = RGB{255, 80, 80}
	RGBFieldLow   = RGB{30, 40, 70}
	RGBFieldHigh  = RGB{170, 90, 220}
	RGBStatusFg   = RGB{0, 0, 0}
	RGBStatusBg   = RGB{180, 180, 180}
	RGBPausedBg   = RGB{255, 170, 0}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Color converts to a tcell truecolor value
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Style is a foreground-only style over the background color
func (c RGB) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(c.Color()).Background(RGBBackground.Color())
}
