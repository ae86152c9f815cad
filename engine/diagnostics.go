package engine

import "gonum.org/v1/gonum/spatial/r2"

// TotalMass sums mass over live bodies
func (s *Simulation) TotalMass() float64 {
	total := 0.0
	for _, b := range s.world.Bodies() {
		total += b.Mass
	}
	return total
}

// TotalMomentum sums m*v over live bodies
func (s *Simulation) TotalMomentum() r2.Vec {
	var p r2.Vec
	for _, b := range s.world.Bodies() {
		p = r2.Add(p, b.Momentum())
	}
	return p
}

// KineticEnergy sums ½mv² over live bodies
func (s *Simulation) KineticEnergy() float64 {
	e := 0.0
	for _, b := range s.world.Bodies() {
		e += 0.5 * b.Mass * r2.Norm2(b.Vel)
	}
	return e
}

// TrailNodeCount sums trail lengths over live bodies
func (s *Simulation) TrailNodeCount() int {
	n := 0
	for _, b := range s.world.Bodies() {
		n += b.Trail.Len()
	}
	return n
}
