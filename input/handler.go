// Package input turns terminal key and mouse events into simulation actions
package input

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/render"
	"github.com/lixenwraith/gravsim/vmath"
)

// GridShape is the block spawned by a right click
type GridShape struct {
	Separation float64
	Cols       int
	Rows       int
}

// Handler owns UI state (pause, spawn size, aim) and drives the simulation from input
//
// Mouse:
//   - left press pauses and starts aiming from the pointer
//   - left drag re-aims the preview with velocity origin - pointer
//   - left release launches, resumes and resets the preview
//   - right press spawns a grid of resting bodies
//   - middle press spawns a stationary body
type Handler struct {
	sim  *engine.Simulation
	vp   render.Viewport
	keys *KeyTable
	grid GridShape

	paused      bool
	spawnRadius float64
	muted       bool
	aim         AimState
	buttons     tcell.ButtonMask

	// OnMute is called after the mute toggle, may be nil
	OnMute func(muted bool)
}

// NewHandler starts paused, matching a freshly loaded scene
func NewHandler(sim *engine.Simulation, vp render.Viewport, spawnRadius float64, grid GridShape) *Handler {
	return &Handler{
		sim:         sim,
		vp:          vp,
		keys:        DefaultKeyTable(),
		grid:        grid,
		paused:      true,
		spawnRadius: vmath.Clamp(spawnRadius, parameter.SpawnRadiusMin, parameter.SpawnRadiusMax),
	}
}

func (h *Handler) Paused() bool {
	return h.paused
}

func (h *Handler) SpawnRadius() float64 {
	return h.spawnRadius
}

func (h *Handler) Muted() bool {
	return h.muted
}

// Aiming reports whether a launch gesture is in progress
func (h *Handler) Aiming() bool {
	return h.aim.Active
}

// Update advances the preview while aiming; called once per frame with real dt
func (h *Handler) Update(dt float64) {
	if !h.aim.Active || h.sim.Preview().Colliding() {
		return
	}
	h.sim.AdvancePreview(dt * parameter.PreviewSpeedup)
}

// HandleEvent processes one terminal event, returns false to quit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	}
	return true
}

func (h *Handler) handleKey(ev *tcell.EventKey) bool {
	switch h.keys.Lookup(ev) {
	case IntentQuit:
		return false
	case IntentTogglePause:
		h.paused = !h.paused
	case IntentToggleField:
		h.sim.SetFieldEnabled(!h.sim.Config().FieldEnabled)
		if h.sim.Config().FieldEnabled {
			// Show something immediately rather than waiting a full period
			h.sim.SampleField()
		}
	case IntentToggleTrails:
		h.sim.SetTrailsEnabled(!h.sim.Config().TrailsEnabled)
	case IntentClear:
		h.sim.Clear()
		h.aim = AimState{}
	case IntentGrowSpawn:
		h.spawnRadius = vmath.Clamp(h.spawnRadius+1, parameter.SpawnRadiusMin, parameter.SpawnRadiusMax)
	case IntentShrinkSpawn:
		h.spawnRadius = vmath.Clamp(h.spawnRadius-1, parameter.SpawnRadiusMin, parameter.SpawnRadiusMax)
	case IntentToggleMute:
		h.muted = !h.muted
		if h.OnMute != nil {
			h.OnMute(h.muted)
		}
	}
	return true
}

func (h *Handler) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pointer := h.vp.ToWorld(x, y)
	buttons := ev.Buttons()
	pressed := buttons &^ h.buttons
	released := h.buttons &^ buttons
	h.buttons = buttons

	switch {
	case pressed&tcell.ButtonPrimary != 0:
		h.aim = AimState{Active: true, Origin: pointer, Last: pointer}
		h.sim.Preview().Reset(pointer, r2.Vec{}, h.spawnRadius)
		h.paused = true
	case released&tcell.ButtonPrimary != 0 && h.aim.Active:
		vel := h.aim.LaunchVelocity(pointer)
		id := h.sim.Spawn(h.aim.Origin, vel, h.spawnRadius, false)
		log.Printf("launch: body %d at (%.0f,%.0f) vel (%.1f,%.1f)", id, h.aim.Origin.X, h.aim.Origin.Y, vel.X, vel.Y)
		h.aim = AimState{}
		h.sim.Preview().Reset(r2.Vec{}, r2.Vec{}, h.spawnRadius)
		h.paused = false
	case buttons&tcell.ButtonPrimary != 0 && h.aim.Active:
		if r2.Norm(r2.Sub(pointer, h.aim.Last)) >= parameter.DragThreshold {
			h.aim.Last = pointer
			h.sim.Preview().Reset(h.aim.Origin, h.aim.LaunchVelocity(pointer), h.spawnRadius)
		}
	}

	if pressed&tcell.ButtonSecondary != 0 {
		h.sim.SpawnGrid(pointer, false, h.spawnRadius, h.grid.Separation, h.grid.Cols, h.grid.Rows)
	}
	if pressed&tcell.ButtonMiddle != 0 {
		h.sim.Spawn(pointer, r2.Vec{}, h.spawnRadius, true)
	}
}
