package engine

import (
	"log"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/events"
	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/physics"
)

// Config holds the tunables a Simulation is built with
type Config struct {
	G       float64
	Density float64

	TrailsEnabled bool
	// TrailMaxNodes bounds each body trail, 0 = unbounded
	TrailMaxNodes int

	FieldEnabled bool
	FieldSpacing float64
	// FieldPeriod is simulation time between automatic field samples
	FieldPeriod float64

	// Width and Height bound the field grid in world units
	Width  float64
	Height float64
}

// DefaultConfig returns compiled-in defaults for a 1920x1080 world
func DefaultConfig() Config {
	return Config{
		G:             parameter.G,
		Density:       parameter.Density,
		TrailsEnabled: false,
		TrailMaxNodes: parameter.TrailMaxNodes,
		FieldEnabled:  true,
		FieldSpacing:  parameter.FieldSpacing,
		FieldPeriod:   parameter.FieldUpdatePeriod,
		Width:         1920,
		Height:        1080,
	}
}

// collisionPair is a merge discovered during the pairwise pass, resolved after it
type collisionPair struct {
	big, small *core.Body
}

// Simulation orchestrates the body arena, stepping, field sampling and preview
// Single-threaded: every method must be called from the frame loop goroutine
type Simulation struct {
	cfg Config

	world      *World
	clock      SimClock
	fieldTimer *CadenceTimer
	field      *FieldSampler
	preview    *Preview

	queue  *events.EventQueue
	router *events.Router[*Simulation]

	// Per-step scratch, reused across steps
	consumed map[core.BodyID]struct{}
	removed  map[core.BodyID]struct{}
	pairs    []collisionPair
}

// NewSimulation creates an empty simulation
func NewSimulation(cfg Config) *Simulation {
	queue := events.NewEventQueue()
	s := &Simulation{
		cfg:        cfg,
		world:      NewWorld(),
		fieldTimer: NewCadenceTimer(cfg.FieldPeriod),
		field:      NewFieldSampler(cfg.G, cfg.FieldSpacing, cfg.Width, cfg.Height),
		preview:    NewPreview(cfg.G, cfg.Density),
		queue:      queue,
		router:     events.NewRouter[*Simulation](queue),
		consumed:   make(map[core.BodyID]struct{}),
		removed:    make(map[core.BodyID]struct{}),
	}
	return s
}

// Config returns the active configuration
func (s *Simulation) Config() Config {
	return s.cfg
}

// SetTrailsEnabled toggles trail recording; existing trails are dropped when disabled
func (s *Simulation) SetTrailsEnabled(enabled bool) {
	s.cfg.TrailsEnabled = enabled
	if !enabled {
		for _, b := range s.world.Bodies() {
			b.Trail.Clear()
		}
	}
}

// SetFieldEnabled toggles automatic field sampling
func (s *Simulation) SetFieldEnabled(enabled bool) {
	s.cfg.FieldEnabled = enabled
}

// Resize rebuilds the field grid for a new world extent
func (s *Simulation) Resize(width, height float64) {
	s.cfg.Width, s.cfg.Height = width, height
	s.field.Resize(width, height)
	cols, rows := s.field.dims()
	log.Printf("resize: world %.0fx%.0f, field grid %dx%d", width, height, cols, rows)
}

// Spawn adds a body and returns its id
// radius must be positive; the input layer clamps before calling
func (s *Simulation) Spawn(pos, vel r2.Vec, radius float64, stationary bool) core.BodyID {
	id := s.world.NextID()
	s.world.Insert(core.NewBody(id, pos, vel, radius, s.cfg.Density, stationary, s.cfg.TrailMaxNodes))
	s.emit(events.EventBodySpawned, &events.BodySpawnedPayload{
		ID:         id,
		Radius:     radius,
		Stationary: stationary,
	})
	return id
}

// SpawnGrid places cols*rows resting bodies on a grid with spacing 2*(radius+separation)
// Bodies are created column by column
func (s *Simulation) SpawnGrid(origin r2.Vec, stationary bool, radius, separation float64, cols, rows int) []core.BodyID {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	spacing := (radius + separation) * 2
	ids := make([]core.BodyID, 0, cols*rows)
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			pos := r2.Add(origin, r2.Vec{X: float64(i) * spacing, Y: float64(j) * spacing})
			ids = append(ids, s.Spawn(pos, r2.Vec{}, radius, stationary))
		}
	}
	return ids
}

// Step advances the simulation by dt when running; a no-op when paused
// Advances the clock, runs one integration step and fires the field sampler on its cadence
func (s *Simulation) Step(dt float64, running bool) {
	if !running {
		return
	}

	s.clock.Advance(dt)
	s.advance(dt)

	if s.fieldTimer.Advance(dt) && s.cfg.FieldEnabled {
		s.SampleField()
	}
}

// advance runs one integration step over the live set
func (s *Simulation) advance(dt float64) {
	bodies := s.world.Bodies()

	// 1. Reset accumulators
	for _, b := range bodies {
		physics.ResetForce(&b.Kinetic)
	}
	clear(s.consumed)
	clear(s.removed)
	s.pairs = s.pairs[:0]

	// 2. Pairwise pass: ascending index pairs, i outer
	for i := 0; i < len(bodies); i++ {
		a := bodies[i]
		if s.isRemoved(a.ID) {
			continue
		}
		for j := i + 1; j < len(bodies); j++ {
			b := bodies[j]
			if s.isRemoved(b.ID) {
				continue
			}

			if physics.Overlaps(a.Pos, a.Radius, b.Pos, b.Radius) {
				// At most one merge per body per step, first-discovered pair wins
				if s.isConsumed(a.ID) || s.isConsumed(b.ID) || !physics.CanMerge(a, b) {
					continue
				}
				big, small := physics.Rank(a, b)
				s.pairs = append(s.pairs, collisionPair{big: big, small: small})
				s.consumed[a.ID] = struct{}{}
				s.consumed[b.ID] = struct{}{}
				s.removed[small.ID] = struct{}{}
				if small == a {
					break
				}
				continue
			}

			onA, onB := physics.PairForce(s.cfg.G, a.Pos, a.Mass, b.Pos, b.Mass)
			physics.AddForce(&a.Kinetic, onA)
			physics.AddForce(&b.Kinetic, onB)
		}
	}

	// 3. Resolve merges in discovery order
	for _, p := range s.pairs {
		res := physics.Merge(p.big, p.small, s.cfg.Density)
		log.Printf("merge: body %d absorbed %d (absorb=%v, mass=%.1f, radius=%.2f)",
			res.Survivor, res.Removed, res.Absorbed, p.big.Mass, p.big.Radius)
		s.emit(events.EventBodiesMerged, &events.BodiesMergedPayload{
			SurvivorID: res.Survivor,
			RemovedID:  res.Removed,
			Absorbed:   res.Absorbed,
			Mass:       p.big.Mass,
		})
	}

	// 4. Integrate survivors
	now := s.clock.Now()
	for _, b := range bodies {
		if s.isRemoved(b.ID) {
			continue
		}
		if !b.Stationary {
			physics.Integrate(&b.Kinetic, b.Mass, dt)
		}
		if s.cfg.TrailsEnabled {
			b.Trail.Append(b.Pos, now)
		}
	}

	// 5. Sweep before the next step can observe the set
	s.world.Sweep(s.removed)
	s.clock.Tick()

	s.emit(events.EventStepCompleted, &events.StepCompletedPayload{
		Step:   s.clock.Steps(),
		Bodies: s.world.Len(),
	})
}

func (s *Simulation) isRemoved(id core.BodyID) bool {
	_, ok := s.removed[id]
	return ok
}

func (s *Simulation) isConsumed(id core.BodyID) bool {
	_, ok := s.consumed[id]
	return ok
}

// SampleField recomputes the field grid from the live set and returns the samples
func (s *Simulation) SampleField() []FieldSample {
	s.field.Sample(s.world.Bodies())
	s.emit(events.EventFieldSampled, nil)
	return s.field.Samples()
}

// FieldSamples returns the last computed field grid
func (s *Simulation) FieldSamples() []FieldSample {
	return s.field.Samples()
}

// Preview returns the launch preview
func (s *Simulation) Preview() *Preview {
	return s.preview
}

// AdvancePreview moves the preview one step against the live set
func (s *Simulation) AdvancePreview(dt float64) {
	s.preview.Advance(dt, s.world.Bodies())
}

// Clear removes every body
func (s *Simulation) Clear() {
	s.world.Clear()
	s.emit(events.EventWorldCleared, nil)
}

// Bodies returns live bodies in insertion order; callers must not retain or mutate the slice
func (s *Simulation) Bodies() []*core.Body {
	return s.world.Bodies()
}

// Body returns the live body with id
func (s *Simulation) Body(id core.BodyID) (*core.Body, bool) {
	return s.world.Get(id)
}

// BodyCount returns live body count
func (s *Simulation) BodyCount() int {
	return s.world.Len()
}

// Time returns elapsed simulation seconds
func (s *Simulation) Time() float64 {
	return s.clock.Now()
}

// Steps returns completed step count
func (s *Simulation) Steps() uint64 {
	return s.clock.Steps()
}

// RegisterHandler routes events to h on Dispatch
func (s *Simulation) RegisterHandler(h events.Handler[*Simulation]) {
	s.router.Register(h)
}

// Dispatch delivers queued events to registered handlers, returns events consumed
func (s *Simulation) Dispatch() int {
	return s.router.DispatchAll(s)
}

func (s *Simulation) emit(t events.EventType, payload any) {
	s.queue.Push(events.Event{Type: t, Payload: payload, Time: s.clock.Now()})
}
