package engine

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/physics"
	"github.com/lixenwraith/gravsim/vmath"
)

// FieldSample is a fixed grid point and the net force a unit mass would feel there
type FieldSample struct {
	Pos   r2.Vec
	Force r2.Vec
}

// FieldSampler evaluates the gravity field on a fixed grid
// Reads bodies, never mutates them
type FieldSampler struct {
	g       float64
	spacing float64
	cols    int
	rows    int
	samples []FieldSample
}

// NewFieldSampler builds a grid of points spaced spacing apart covering width x height
func NewFieldSampler(g, spacing, width, height float64) *FieldSampler {
	f := &FieldSampler{g: g, spacing: spacing}
	f.Resize(width, height)
	return f
}

// Resize rebuilds the grid; forces are zeroed until the next Sample
func (f *FieldSampler) Resize(width, height float64) {
	f.cols, f.rows = 0, 0
	if f.spacing > 0 {
		f.cols = int(width / f.spacing)
		f.rows = int(height / f.spacing)
	}
	f.samples = f.samples[:0]
	for i := 0; i < f.cols; i++ {
		for j := 0; j < f.rows; j++ {
			f.samples = append(f.samples, FieldSample{
				Pos: r2.Vec{
					X: (float64(i) + 0.5) * f.spacing,
					Y: (float64(j) + 0.5) * f.spacing,
				},
			})
		}
	}
}

// Sample recomputes every point from the given bodies
// Bodies whose disc encloses a point do not contribute to it
func (f *FieldSampler) Sample(bodies []*core.Body) {
	for i := range f.samples {
		s := &f.samples[i]
		s.Force = r2.Vec{}
		for _, b := range bodies {
			dist := vmath.Distance(s.Pos, b.Pos)
			if dist <= b.Radius {
				continue
			}
			s.Force = r2.Add(s.Force, physics.Force(f.g, dist, vmath.AngleTo(s.Pos, b.Pos), 1, b.Mass))
		}
	}
}

// Samples returns the grid; callers must not retain the slice across Resize
func (f *FieldSampler) Samples() []FieldSample {
	return f.samples
}

// dims returns grid columns and rows
func (f *FieldSampler) dims() (cols, rows int) {
	return f.cols, f.rows
}
