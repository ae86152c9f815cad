package engine

import (
	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/parameter"
)

// IDAllocator hands out body ids from a wrapping counter
// Wraps to 0 at limit and skips ids still live; uniqueness holds among live bodies only
type IDAllocator struct {
	next  uint32
	limit uint32
}

// NewIDAllocator creates an allocator wrapping at limit
func NewIDAllocator(limit uint32) *IDAllocator {
	return &IDAllocator{limit: limit}
}

// Next returns the next id for which isLive reports false
func (a *IDAllocator) Next(isLive func(core.BodyID) bool) core.BodyID {
	for {
		if a.next >= a.limit {
			a.next = 0
		}
		id := core.BodyID(a.next)
		a.next++
		if isLive == nil || !isLive(id) {
			return id
		}
	}
}

// World is the arena of live bodies keyed by stable id
// Iteration order is insertion order, which pairwise evaluation relies on
type World struct {
	byID  map[core.BodyID]*core.Body
	order []*core.Body
	ids   *IDAllocator
}

// NewWorld creates an empty arena
func NewWorld() *World {
	return &World{
		byID: make(map[core.BodyID]*core.Body),
		ids:  NewIDAllocator(parameter.MaxBodyID),
	}
}

// NextID reserves an id not held by any live body
func (w *World) NextID() core.BodyID {
	return w.ids.Next(w.Has)
}

// Insert adds a body; the id must come from NextID
func (w *World) Insert(b *core.Body) {
	w.byID[b.ID] = b
	w.order = append(w.order, b)
}

// Has reports whether id is live
func (w *World) Has(id core.BodyID) bool {
	_, ok := w.byID[id]
	return ok
}

// Get returns the live body for id
func (w *World) Get(id core.BodyID) (*core.Body, bool) {
	b, ok := w.byID[id]
	return b, ok
}

// Bodies returns live bodies in insertion order
// The slice is owned by the world and is invalidated by Insert, Sweep and Clear
func (w *World) Bodies() []*core.Body {
	return w.order
}

// Len returns live body count
func (w *World) Len() int {
	return len(w.order)
}

// Sweep removes every body whose id is in ids, preserving order of the rest
// Returns the number of bodies removed
func (w *World) Sweep(ids map[core.BodyID]struct{}) int {
	if len(ids) == 0 {
		return 0
	}
	kept := w.order[:0]
	for _, b := range w.order {
		if _, dead := ids[b.ID]; dead {
			delete(w.byID, b.ID)
			continue
		}
		kept = append(kept, b)
	}
	// Release pointers held past the new length
	for i := len(kept); i < len(w.order); i++ {
		w.order[i] = nil
	}
	removed := len(w.order) - len(kept)
	w.order = kept
	return removed
}

// Clear removes all bodies; the id counter keeps running
func (w *World) Clear() {
	clear(w.byID)
	clear(w.order)
	w.order = w.order[:0]
}
