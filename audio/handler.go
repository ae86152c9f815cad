package audio

import (
	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/events"
)

// Handler turns simulation events into sound cues
type Handler struct {
	sm *SoundManager
}

func NewHandler(sm *SoundManager) *Handler {
	return &Handler{sm: sm}
}

func (h *Handler) EventTypes() []events.EventType {
	return []events.EventType{events.EventBodiesMerged, events.EventBodySpawned}
}

func (h *Handler) HandleEvent(_ *engine.Simulation, ev events.Event) {
	switch ev.Type {
	case events.EventBodiesMerged:
		if p, ok := ev.Payload.(*events.BodiesMergedPayload); ok {
			h.sm.PlayMerge(p.Mass)
		}
	case events.EventBodySpawned:
		h.sm.PlaySpawn()
	}
}
