package engine

// SimClock is elapsed simulation time, advanced only while the simulation runs
// Owned by Simulation and passed by value to trails and the field cadence
type SimClock struct {
	elapsed float64
	steps   uint64
}

// Advance moves simulation time forward by dt seconds
func (c *SimClock) Advance(dt float64) {
	c.elapsed += dt
}

// Tick counts one completed step
func (c *SimClock) Tick() {
	c.steps++
}

// Now returns elapsed simulation seconds
func (c *SimClock) Now() float64 {
	return c.elapsed
}

// Steps returns completed step count
func (c *SimClock) Steps() uint64 {
	return c.steps
}

// CadenceTimer fires once each time accumulated time reaches period
type CadenceTimer struct {
	period  float64
	elapsed float64
}

// NewCadenceTimer creates a timer with the given period in seconds
func NewCadenceTimer(period float64) *CadenceTimer {
	return &CadenceTimer{period: period}
}

// Advance accumulates dt and reports whether the period was reached
// The accumulator resets to zero when it fires
func (t *CadenceTimer) Advance(dt float64) bool {
	t.elapsed += dt
	if t.elapsed >= t.period {
		t.elapsed = 0
		return true
	}
	return false
}
