package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/gravsim/events"
	"github.com/lixenwraith/gravsim/status"
)

// StatusHandler publishes simulation metrics to the status registry
type StatusHandler struct {
	bodies     *atomic.Int64
	steps      *atomic.Int64
	merges     *atomic.Int64
	trailNodes *atomic.Int64
	fieldRuns  *atomic.Int64
	mass       *status.AtomicFloat
	time       *status.AtomicFloat
	energy     *status.AtomicFloat
}

// NewStatusHandler caches metric pointers from reg
func NewStatusHandler(reg *status.Registry) *StatusHandler {
	return &StatusHandler{
		bodies:     reg.Ints.Get(status.KeyBodies),
		steps:      reg.Ints.Get(status.KeySteps),
		merges:     reg.Ints.Get(status.KeyMerges),
		trailNodes: reg.Ints.Get(status.KeyTrailNodes),
		fieldRuns:  reg.Ints.Get(status.KeyFieldRuns),
		mass:       reg.Floats.Get(status.KeyMass),
		time:       reg.Floats.Get(status.KeyTime),
		energy:     reg.Floats.Get(status.KeyEnergy),
	}
}

func (h *StatusHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventBodySpawned,
		events.EventBodiesMerged,
		events.EventStepCompleted,
		events.EventFieldSampled,
		events.EventWorldCleared,
	}
}

func (h *StatusHandler) HandleEvent(s *Simulation, ev events.Event) {
	switch ev.Type {
	case events.EventBodiesMerged:
		h.merges.Add(1)
	case events.EventFieldSampled:
		h.fieldRuns.Add(1)
	case events.EventStepCompleted:
		if p, ok := ev.Payload.(*events.StepCompletedPayload); ok {
			h.steps.Store(int64(p.Step))
		}
		h.energy.Set(s.KineticEnergy())
		h.trailNodes.Store(int64(s.TrailNodeCount()))
		h.time.Set(s.Time())
	}
	// Aggregates reflect the live set at dispatch time
	h.bodies.Store(int64(s.BodyCount()))
	h.mass.Set(s.TotalMass())
}
