package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// AngleTo returns the direction from a to b in radians
func AngleTo(a, b r2.Vec) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// FromPolar returns a vector of length mag pointing along angle
func FromPolar(mag, angle float64) r2.Vec {
	sin, cos := math.Sincos(angle)
	return r2.Vec{X: mag * cos, Y: mag * sin}
}

// Distance returns Euclidean distance between a and b
func Distance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(b, a))
}

// Midpoint returns the point halfway between a and b
func Midpoint(a, b r2.Vec) r2.Vec {
	return r2.Scale(0.5, r2.Add(a, b))
}

// Negate returns -v
func Negate(v r2.Vec) r2.Vec {
	return r2.Vec{X: -v.X, Y: -v.Y}
}

// ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func ClampMagnitude(v r2.Vec, maxMag float64) r2.Vec {
	mag := r2.Norm(v)
	if mag <= maxMag || mag == 0 {
		return v
	}
	return r2.Scale(maxMag/mag, v)
}

// Octant maps an angle to one of 8 compass sectors, 0 = +X, counter-clockwise in math orientation
func Octant(angle float64) int {
	sector := int(math.Floor(angle/(math.Pi/4) + 0.5))
	return ((sector % 8) + 8) % 8
}
