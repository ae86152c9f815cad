package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/vmath"
)

// MergeResult describes one resolved collision
type MergeResult struct {
	Survivor core.BodyID
	Removed  core.BodyID
	// Absorbed is true when the survivor kept its position:
	// large volume ratio, or a stationary survivor of any size
	Absorbed bool
}

// Overlaps reports whether two discs touch: distance between centres <= sum of radii
func Overlaps(posA r2.Vec, radiusA float64, posB r2.Vec, radiusB float64) bool {
	return vmath.Distance(posA, posB) <= radiusA+radiusB
}

// CanMerge reports whether a colliding pair resolves into one body
// Two fixed attractors overlap inertly since neither may be absorbed
func CanMerge(a, b *core.Body) bool {
	return !(a.Stationary && b.Stationary)
}

// Rank orders a colliding pair into (big, small)
// Strictly larger radius is big, exact tie keeps argument order
// A stationary body is never the small side
func Rank(a, b *core.Body) (big, small *core.Body) {
	if a.Stationary != b.Stationary {
		if a.Stationary {
			return a, b
		}
		return b, a
	}
	if b.Radius > a.Radius {
		return b, a
	}
	return a, b
}

// Merge folds small into big in place, conserving momentum and mass
// The caller is responsible for removing small from the arena
func Merge(big, small *core.Body, density float64) MergeResult {
	totalMomentum := r2.Add(big.Momentum(), small.Momentum())
	totalMass := big.Mass + small.Mass

	newRadius := vmath.SphereRadius(big.Volume(density) + small.Volume(density))

	// Volume ratio decides between absorption and a true merge; a fixed attractor never moves
	absorbed := big.Stationary || vmath.Cube(big.Radius/small.Radius) > parameter.MergeAbsorbRatio

	if !big.Stationary {
		if !absorbed {
			big.Pos = vmath.Midpoint(big.Pos, small.Pos)
		}
		big.Vel = r2.Scale(1/totalMass, totalMomentum)
	}
	big.Mass = totalMass
	big.Radius = newRadius

	return MergeResult{
		Survivor: big.ID,
		Removed:  small.ID,
		Absorbed: absorbed,
	}
}
