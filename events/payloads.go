package events

import "github.com/lixenwraith/gravsim/core"

// BodySpawnedPayload describes a freshly created body
type BodySpawnedPayload struct {
	ID         core.BodyID
	Radius     float64
	Stationary bool
}

// BodiesMergedPayload describes a resolved collision
type BodiesMergedPayload struct {
	SurvivorID core.BodyID
	RemovedID  core.BodyID
	Absorbed   bool
	// Mass is the survivor's mass after the merge
	Mass float64
}

// StepCompletedPayload summarizes an integration step
type StepCompletedPayload struct {
	Step   uint64
	Bodies int
}
