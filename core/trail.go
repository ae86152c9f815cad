package core

import "gonum.org/v1/gonum/spatial/r2"

// TrailNode is a position sample stamped with simulation time
type TrailNode struct {
	Pos  r2.Vec
	Time float64
}

// Trail is an ordered history of positions, oldest first
type Trail struct {
	Nodes []TrailNode
	// MaxNodes bounds history length, 0 = unbounded
	MaxNodes int
}

// Append adds a node, dropping the oldest when the bound is reached
func (t *Trail) Append(pos r2.Vec, time float64) {
	if t.MaxNodes > 0 && len(t.Nodes) >= t.MaxNodes {
		// Shift in place to keep the backing array
		drop := len(t.Nodes) - t.MaxNodes + 1
		copy(t.Nodes, t.Nodes[drop:])
		t.Nodes = t.Nodes[:len(t.Nodes)-drop]
	}
	t.Nodes = append(t.Nodes, TrailNode{Pos: pos, Time: time})
}

// Reset clears history and seeds it with a single node
func (t *Trail) Reset(pos r2.Vec, time float64) {
	t.Nodes = append(t.Nodes[:0], TrailNode{Pos: pos, Time: time})
}

// Clear removes all nodes
func (t *Trail) Clear() {
	t.Nodes = t.Nodes[:0]
}

// Len returns node count
func (t *Trail) Len() int {
	return len(t.Nodes)
}
