package events

// EventType represents the type of simulation event
type EventType int

const (
	// EventBodySpawned signals a new real body entered the arena
	// Trigger: Simulation.Spawn / SpawnGrid
	// Consumer: audio.Handler, StatusHandler | Payload: *BodySpawnedPayload
	EventBodySpawned EventType = iota

	// EventBodiesMerged signals a collision resolved into one survivor
	// Trigger: Simulation.Step after resolution
	// Consumer: audio.Handler, StatusHandler | Payload: *BodiesMergedPayload
	EventBodiesMerged

	// EventStepCompleted signals one integration step finished and removals were swept
	// Trigger: Simulation.Step | Payload: *StepCompletedPayload
	EventStepCompleted

	// EventFieldSampled signals the field grid was recomputed
	// Trigger: Simulation.SampleField | Payload: nil
	EventFieldSampled

	// EventWorldCleared signals all bodies were removed
	// Trigger: Simulation.Clear | Payload: nil
	EventWorldCleared
)

var typeNames = map[EventType]string{
	EventBodySpawned:   "BodySpawned",
	EventBodiesMerged:  "BodiesMerged",
	EventStepCompleted: "StepCompleted",
	EventFieldSampled:  "FieldSampled",
	EventWorldCleared:  "WorldCleared",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event represents a single simulation event
type Event struct {
	Type    EventType
	Payload any
	// Time is simulation time when the event was emitted
	Time float64
}
