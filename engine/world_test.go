package engine

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravsim/core"
)

func TestIDAllocatorMonotonic(t *testing.T) {
	a := NewIDAllocator(100)
	for want := core.BodyID(0); want < 5; want++ {
		if got := a.Next(nil); got != want {
			t.Errorf("Next() = %d, want %d", got, want)
		}
	}
}

func TestIDAllocatorWrapSkipsLive(t *testing.T) {
	a := NewIDAllocator(4)
	live := map[core.BodyID]bool{}
	isLive := func(id core.BodyID) bool { return live[id] }

	for i := 0; i < 4; i++ {
		live[a.Next(isLive)] = true
	}
	// Free 2 only; wrap must skip 0, 1, 3
	delete(live, 2)
	if got := a.Next(isLive); got != 2 {
		t.Errorf("after wrap Next() = %d, want 2", got)
	}
}

func TestWorldInsertSweep(t *testing.T) {
	w := NewWorld()
	var ids []core.BodyID
	for i := 0; i < 5; i++ {
		id := w.NextID()
		w.Insert(core.NewBody(id, r2.Vec{X: float64(i)}, r2.Vec{}, 1, 1, false, 0))
		ids = append(ids, id)
	}
	if w.Len() != 5 {
		t.Fatalf("Len = %d, want 5", w.Len())
	}

	removed := w.Sweep(map[core.BodyID]struct{}{ids[1]: {}, ids[3]: {}})
	if removed != 2 || w.Len() != 3 {
		t.Errorf("Sweep removed %d, Len %d", removed, w.Len())
	}
	if w.Has(ids[1]) || w.Has(ids[3]) {
		t.Error("swept ids still live")
	}

	order := w.Bodies()
	if order[0].ID != ids[0] || order[1].ID != ids[2] || order[2].ID != ids[4] {
		t.Errorf("sweep did not preserve order: %d %d %d", order[0].ID, order[1].ID, order[2].ID)
	}

	if b, ok := w.Get(ids[2]); !ok || b.Pos.X != 2 {
		t.Errorf("Get(%d) = %v, %v", ids[2], b, ok)
	}

	w.Clear()
	if w.Len() != 0 || w.Has(ids[0]) {
		t.Error("Clear left bodies behind")
	}
	if next := w.NextID(); next != 5 {
		t.Errorf("id counter should keep running after Clear, got %d", next)
	}
}

func TestSimClockAndCadence(t *testing.T) {
	var c SimClock
	c.Advance(0.25)
	c.Advance(0.25)
	c.Tick()
	if c.Now() != 0.5 || c.Steps() != 1 {
		t.Errorf("clock = %v/%d", c.Now(), c.Steps())
	}

	timer := NewCadenceTimer(0.5)
	fired := 0
	for i := 0; i < 10; i++ {
		if timer.Advance(0.2) {
			fired++
		}
	}
	// fires at 0.6 and again 0.6 later: steps 3, 6, 9
	if fired != 3 {
		t.Errorf("timer fired %d times, want 3", fired)
	}
	if timer.elapsed >= 0.5 {
		t.Errorf("timer elapsed %v should be below period", timer.elapsed)
	}
}
