package events

import (
	"testing"

	"github.com/lixenwraith/gravsim/parameter"
)

type recorder struct {
	types []EventType
	seen  []Event
}

func (r *recorder) HandleEvent(ctx *int, ev Event) {
	*ctx++
	r.seen = append(r.seen, ev)
}

func (r *recorder) EventTypes() []EventType { return r.types }

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(Event{Type: EventStepCompleted, Time: float64(i)})
	}
	if q.Len() != 5 {
		t.Errorf("Len = %d, want 5", q.Len())
	}
	got := q.Consume()
	if len(got) != 5 {
		t.Fatalf("Consume returned %d events, want 5", len(got))
	}
	for i, ev := range got {
		if ev.Time != float64(i) {
			t.Errorf("event %d has Time %v", i, ev.Time)
		}
	}
	if q.Consume() != nil {
		t.Error("second Consume should be empty")
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(Event{Time: float64(i)})
	}
	got := q.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("got %d events, want %d", len(got), parameter.EventQueueSize)
	}
	if last := got[len(got)-1].Time; last != float64(total-1) {
		t.Errorf("newest event Time = %v, want %v", last, total-1)
	}
}

func TestQueueWrapsAcrossBoundary(t *testing.T) {
	q := NewEventQueue()
	// Leave head near the end of the ring so later pushes wrap
	for i := 0; i < parameter.EventQueueSize-3; i++ {
		q.Push(Event{})
	}
	q.Consume()

	for i := 0; i < 3; i++ {
		q.Push(Event{Time: float64(i)})
	}
	got := q.Consume()
	for i := 0; i < 3; i++ {
		q.Push(Event{Time: float64(10 + i)})
	}
	got = append(got, q.Consume()...)

	want := []float64{0, 1, 2, 10, 11, 12}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d", len(got), len(want))
	}
	for i, ev := range got {
		if ev.Time != want[i] {
			t.Errorf("event %d Time = %v, want %v", i, ev.Time, want[i])
		}
	}
	if q.Len() != 0 {
		t.Errorf("Len after drain = %d", q.Len())
	}
}

func TestQueueOverflowDropsOldestInOrder(t *testing.T) {
	q := NewEventQueue()
	total := 2*parameter.EventQueueSize + 7
	for i := 0; i < total; i++ {
		q.Push(Event{Time: float64(i)})
	}
	if q.Len() != parameter.EventQueueSize {
		t.Fatalf("Len = %d, want %d", q.Len(), parameter.EventQueueSize)
	}
	got := q.Consume()
	first := total - parameter.EventQueueSize
	for i, ev := range got {
		if ev.Time != float64(first+i) {
			t.Fatalf("event %d Time = %v, want %v", i, ev.Time, first+i)
		}
	}
}

func TestRouterDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q)

	merges := &recorder{types: []EventType{EventBodiesMerged}}
	both := &recorder{types: []EventType{EventBodiesMerged, EventBodySpawned}}
	r.Register(merges)
	r.Register(both)

	q.Push(Event{Type: EventBodySpawned})
	q.Push(Event{Type: EventBodiesMerged, Payload: &BodiesMergedPayload{SurvivorID: 1, RemovedID: 2}})
	q.Push(Event{Type: EventFieldSampled})

	calls := 0
	if n := r.DispatchAll(&calls); n != 3 {
		t.Errorf("DispatchAll consumed %d, want 3", n)
	}
	if calls != 3 {
		t.Errorf("handler calls = %d, want 3", calls)
	}
	if len(merges.seen) != 1 || len(both.seen) != 2 {
		t.Errorf("routing mismatch: merges=%d both=%d", len(merges.seen), len(both.seen))
	}
	if both.seen[0].Type != EventBodySpawned {
		t.Errorf("expected FIFO order, first was %v", both.seen[0].Type)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventBodiesMerged.String() != "BodiesMerged" {
		t.Errorf("String() = %q", EventBodiesMerged.String())
	}
	if EventType(99).String() != "Unknown" {
		t.Errorf("unknown type String() = %q", EventType(99).String())
	}
}
