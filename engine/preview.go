package engine

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/physics"
	"github.com/lixenwraith/gravsim/vmath"
)

// Preview forecasts the path of a body before it is launched
// It reads the live set but never merges with, removes or pushes a real body
type Preview struct {
	g       float64
	density float64

	body    core.PreviewBody
	elapsed float64
}

// NewPreview creates an idle preview
func NewPreview(g, density float64) *Preview {
	p := &Preview{g: g, density: density}
	p.body.Trail.MaxNodes = parameter.PreviewTrailMax
	return p
}

// Reset starts a new forecast from origin
func (p *Preview) Reset(origin, vel r2.Vec, radius float64) {
	p.body.Pos = origin
	p.body.Vel = vel
	p.body.Force = r2.Vec{}
	p.body.Radius = radius
	p.body.Mass = core.MassFromRadius(radius, p.density)
	p.body.Colliding = false
	p.elapsed = 0
	p.body.Trail.Reset(origin, 0)
}

// Advance integrates one step against bodies
// Latches Colliding on the first overlap and stays frozen until Reset
func (p *Preview) Advance(dt float64, bodies []*core.Body) {
	if p.body.Colliding {
		return
	}

	physics.ResetForce(&p.body.Kinetic)
	for _, b := range bodies {
		dist := vmath.Distance(p.body.Pos, b.Pos)
		if dist <= p.body.Radius+b.Radius {
			p.body.Colliding = true
			return
		}
		physics.AddForce(&p.body.Kinetic, physics.Force(p.g, dist, vmath.AngleTo(p.body.Pos, b.Pos), p.body.Mass, b.Mass))
	}

	physics.Integrate(&p.body.Kinetic, p.body.Mass, dt)
	p.elapsed += dt
	p.body.Trail.Append(p.body.Pos, p.elapsed)
}

// Body returns the preview state for rendering
func (p *Preview) Body() *core.PreviewBody {
	return &p.body
}

// Colliding reports whether the forecast hit a live body
func (p *Preview) Colliding() bool {
	return p.body.Colliding
}
