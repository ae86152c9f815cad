package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/parameter"
)

const (
	glyphBody       = '●'
	glyphStationary = '◆'
	glyphFill       = '█'
	glyphTrail      = '·'
	glyphPreview    = '○'
	glyphPreviewHit = '✕'
)

// Frame is everything drawn in one refresh
type Frame struct {
	Bodies []*core.Body
	Time   float64

	ShowField bool
	Field     []engine.FieldSample

	// Preview is nil when no launch is being aimed
	Preview *core.PreviewBody

	Paused      bool
	AudioOn     bool
	SpawnRadius float64
	// Status holds extra key=value entries appended to the status bar
	Status []string
}

// Renderer draws frames to a tcell screen
type Renderer struct {
	screen tcell.Screen
	vp     Viewport
	width  int
	height int
}

func NewRenderer(screen tcell.Screen, vp Viewport) *Renderer {
	r := &Renderer{screen: screen, vp: vp}
	r.width, r.height = screen.Size()
	return r
}

// Resize updates cached screen dimensions and returns the new world extent
func (r *Renderer) Resize(cols, rows int) (width, height float64) {
	r.width, r.height = cols, rows
	return r.vp.WorldSize(cols, rows)
}

// Viewport returns the active world-to-cell mapping
func (r *Renderer) Viewport() Viewport {
	return r.vp
}

// Draw clears and paints a full frame, layers back to front: field, trails, preview, bodies, status
func (r *Renderer) Draw(f Frame) {
	r.screen.SetStyle(RGBBackground.Style())
	r.screen.Clear()

	if f.ShowField {
		r.drawField(f.Field)
	}
	for _, b := range f.Bodies {
		r.drawTrail(&b.Trail, f.Time, RGBTrail, parameter.TrailLifetime)
	}
	if f.Preview != nil {
		r.drawPreview(f.Preview)
	}
	for _, b := range f.Bodies {
		r.drawBody(b)
	}
	r.drawStatus(f)

	r.screen.Show()
}

func (r *Renderer) worldRows() int {
	return r.height - parameter.StatusBarHeight
}

// put writes a cell clipped to the world area
func (r *Renderer) put(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.worldRows() {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) drawField(samples []engine.FieldSample) {
	levels := FieldScales(samples)
	for i, s := range samples {
		level := levels[i]
		if level < parameter.FieldArrowMinLevel {
			continue
		}
		x, y := r.vp.ToCell(s.Pos)
		color := RGBFieldLow.Blend(RGBFieldHigh, level)
		r.put(x, y, ArrowGlyph(s.Force), color.Style())
	}
}

// drawTrail fades nodes by age; lifetime <= 0 draws every node at full intensity
func (r *Renderer) drawTrail(t *core.Trail, now float64, color RGB, lifetime float64) {
	for _, n := range t.Nodes {
		alpha := 1.0
		if lifetime > 0 {
			alpha = 1 - (now-n.Time)/lifetime
			if alpha <= 0 {
				continue
			}
		}
		x, y := r.vp.ToCell(n.Pos)
		r.put(x, y, glyphTrail, RGBBackground.Blend(color, math.Max(alpha, 0.2)).Style())
	}
}

func (r *Renderer) drawPreview(p *core.PreviewBody) {
	color := RGBPreview
	glyph := glyphPreview
	if p.Colliding {
		color = RGBPreviewHit
		glyph = glyphPreviewHit
	}
	r.drawTrail(&p.Trail, 0, color, 0)
	x, y := r.vp.ToCell(p.Pos)
	r.put(x, y, glyph, color.Style())
}

func (r *Renderer) drawBody(b *core.Body) {
	color := RGBBody
	glyph := glyphBody
	if b.Stationary {
		color = RGBStationary
		glyph = glyphStationary
	}
	style := color.Style()

	rx, ry := r.vp.CellRadius(b.Radius)
	if rx < 1 && ry < 1 {
		x, y := r.vp.ToCell(b.Pos)
		r.put(x, y, glyph, style)
		return
	}

	// Fill every cell whose center lies inside the disc
	x0, y0 := r.vp.ToCell(r2.Sub(b.Pos, r2.Vec{X: b.Radius, Y: b.Radius}))
	x1, y1 := r.vp.ToCell(r2.Add(b.Pos, r2.Vec{X: b.Radius, Y: b.Radius}))
	r2b := b.Radius * b.Radius
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if r2.Norm2(r2.Sub(r.vp.ToWorld(x, y), b.Pos)) <= r2b {
				r.put(x, y, glyphFill, style)
			}
		}
	}
	cx, cy := r.vp.ToCell(b.Pos)
	r.put(cx, cy, glyph, style)
}

// StatusText formats the status bar contents
func StatusText(f Frame) string {
	var sb strings.Builder
	if f.Paused {
		sb.WriteString(parameter.PausedText)
	} else {
		sb.WriteString(parameter.RunningText)
	}
	fmt.Fprintf(&sb, " bodies=%d r=%.0f t=%.1fs", len(f.Bodies), f.SpawnRadius, f.Time)
	for _, s := range f.Status {
		sb.WriteByte(' ')
		sb.WriteString(s)
	}
	if f.AudioOn {
		sb.WriteByte(' ')
		sb.WriteString(parameter.AudioStr)
	}
	return sb.String()
}

func (r *Renderer) drawStatus(f Frame) {
	bg := RGBStatusBg
	if f.Paused {
		bg = RGBPausedBg
	}
	style := tcell.StyleDefault.Foreground(RGBStatusFg.Color()).Background(bg.Color())

	y := r.height - parameter.StatusBarHeight
	if y < 0 {
		return
	}
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
	x := 0
	for _, ch := range StatusText(f) {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
