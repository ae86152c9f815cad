package events

import "github.com/lixenwraith/gravsim/parameter"

// EventQueue is a fixed-capacity FIFO ring of simulation events
// Producer and consumer are the frame loop goroutine; no synchronization
//
// Overflow: the oldest pending event is overwritten when full
type EventQueue struct {
	events [parameter.EventQueueSize]Event
	head   int // Index of the oldest pending event
	count  int // Pending events
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends event, dropping the oldest pending one when full
func (eq *EventQueue) Push(event Event) {
	idx := (eq.head + eq.count) & parameter.EventBufferMask
	eq.events[idx] = event
	if eq.count == parameter.EventQueueSize {
		eq.head = (eq.head + 1) & parameter.EventBufferMask
		return
	}
	eq.count++
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []Event {
	if eq.count == 0 {
		return nil
	}
	result := make([]Event, eq.count)
	for i := range result {
		idx := (eq.head + i) & parameter.EventBufferMask
		result[i] = eq.events[idx]
		// Drop payload references held by the ring
		eq.events[idx] = Event{}
	}
	eq.head, eq.count = 0, 0
	return result
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return eq.count
}
