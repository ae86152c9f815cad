package core

import "gonum.org/v1/gonum/spatial/r2"

// Kinetic is the integrable state shared by real and preview bodies
type Kinetic struct {
	// Pos is the centre in world units
	Pos r2.Vec
	// Vel is velocity in world units per second
	Vel r2.Vec
	// Force is the per-step accumulated force, reset before each step
	Force r2.Vec
}
