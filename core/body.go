package core

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravsim/vmath"
)

// BodyID identifies a live body; unique among live bodies only
type BodyID uint32

// Body is a real simulation member
// Only *Body values enter the world arena, the id space and collision resolution
type Body struct {
	Kinetic

	ID         BodyID
	Mass       float64
	Radius     float64
	Stationary bool

	Trail Trail
}

// NewBody creates a body whose mass derives from radius and density
func NewBody(id BodyID, pos, vel r2.Vec, radius, density float64, stationary bool, trailMax int) *Body {
	return &Body{
		Kinetic: Kinetic{
			Pos: pos,
			Vel: vel,
		},
		ID:         id,
		Mass:       MassFromRadius(radius, density),
		Radius:     radius,
		Stationary: stationary,
		Trail:      Trail{MaxNodes: trailMax},
	}
}

// Momentum returns m*v
func (b *Body) Momentum() r2.Vec {
	return r2.Scale(b.Mass, b.Vel)
}

// Volume returns the volume implied by mass and density
func (b *Body) Volume(density float64) float64 {
	return b.Mass / density
}

// PreviewBody is a transient launch forecast
// Distinct from Body so it can never be stored in the arena or merged
type PreviewBody struct {
	Kinetic

	Mass      float64
	Radius    float64
	Colliding bool

	Trail Trail
}

// MassFromRadius returns density * sphere volume of radius
func MassFromRadius(radius, density float64) float64 {
	return density * vmath.SphereVolume(radius)
}
