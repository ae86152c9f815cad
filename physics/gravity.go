package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravsim/vmath"
)

// GravityMagnitude returns g*massA*massB/distance²
func GravityMagnitude(g, massA, massB, distance float64) float64 {
	return (g * massA * massB) / (distance * distance)
}

// Force returns the attraction on A toward B
// angle: direction from A to B in radians
// distance must be non-zero; colliding pairs never reach here
func Force(g, distance, angle, massA, massB float64) r2.Vec {
	return vmath.FromPolar(GravityMagnitude(g, massA, massB, distance), angle)
}

// PairForce returns forces on a and b, computed once and mirrored
// onB is the exact negation of onA
func PairForce(g float64, posA r2.Vec, massA float64, posB r2.Vec, massB float64) (onA, onB r2.Vec) {
	dist := vmath.Distance(posA, posB)
	onA = Force(g, dist, vmath.AngleTo(posA, posB), massA, massB)
	return onA, vmath.Negate(onA)
}
