package input

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/vmath"
)

// AimState tracks a left-button launch gesture
type AimState struct {
	Active bool
	// Origin is where the button went down; the body spawns here
	Origin r2.Vec
	// Last is the pointer position that produced the current preview
	Last r2.Vec
}

// LaunchVelocity is the vector from the pointer back to the origin
// Pulling away from the origin launches in the opposite direction, capped at MaxLaunchSpeed
func (a AimState) LaunchVelocity(pointer r2.Vec) r2.Vec {
	return vmath.ClampMagnitude(r2.Sub(a.Origin, pointer), parameter.MaxLaunchSpeed)
}
