package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravsim/core"
)

// Integrate performs semi-implicit Euler: v = v + F/m*dt; p = p + v*dt
// Accumulated force is left in place; the caller resets it at the start of the next step
func Integrate(k *core.Kinetic, mass, dt float64) {
	k.Vel = r2.Add(k.Vel, r2.Scale(dt/mass, k.Force))
	k.Pos = r2.Add(k.Pos, r2.Scale(dt, k.Vel))
}

// ResetForce zeroes the accumulator
func ResetForce(k *core.Kinetic) {
	k.Force = r2.Vec{}
}

// AddForce accumulates f
func AddForce(k *core.Kinetic, f r2.Vec) {
	k.Force = r2.Add(k.Force, f)
}
