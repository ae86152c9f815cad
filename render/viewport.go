package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravsim/parameter"
)

// Viewport maps world units to terminal cells
// World origin is the top-left cell; the status bar sits below the world rows
type Viewport struct {
	CellW float64
	CellH float64
}

func DefaultViewport() Viewport {
	return Viewport{CellW: parameter.CellWidth, CellH: parameter.CellHeight}
}

// ToCell returns the cell containing p
func (v Viewport) ToCell(p r2.Vec) (x, y int) {
	return int(math.Floor(p.X / v.CellW)), int(math.Floor(p.Y / v.CellH))
}

// ToWorld returns the world position of the center of cell (x, y)
func (v Viewport) ToWorld(x, y int) r2.Vec {
	return r2.Vec{
		X: (float64(x) + 0.5) * v.CellW,
		Y: (float64(y) + 0.5) * v.CellH,
	}
}

// WorldSize returns the world extent covered by a screen of cols x rows, excluding the status bar
func (v Viewport) WorldSize(cols, rows int) (width, height float64) {
	rows -= parameter.StatusBarHeight
	if rows < 0 {
		rows = 0
	}
	return float64(cols) * v.CellW, float64(rows) * v.CellH
}

// CellRadius returns radius r in cells along each axis
func (v Viewport) CellRadius(r float64) (rx, ry float64) {
	return r / v.CellW, r / v.CellH
}
