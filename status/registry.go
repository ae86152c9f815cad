package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys published by the simulation
const (
	KeyBodies     = "sim.bodies"
	KeySteps      = "sim.steps"
	KeyMerges     = "sim.merges"
	KeyTrailNodes = "sim.trail_nodes"
	KeyMass       = "sim.mass"
	KeyTime       = "sim.time"
	KeyEnergy     = "sim.energy"
	KeyFieldRuns  = "field.samples"
)

// Registry is the central metrics facade
// Handlers cache pointers at construction; updates go straight to the atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Lines renders every metric as "key=value" in key order, ints first
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.3g", key, v.Get()))
	})
	return lines
}
