package vmath

import "math"

// SphereVolume returns the volume of a sphere of radius r
// Bodies are drawn as discs but carry sphere-like mass so merges grow radius by cube root
func SphereVolume(r float64) float64 {
	return (4.0 / 3.0) * math.Pi * r * r * r
}

// SphereRadius inverts SphereVolume: r = ((3/4)*v/π)^(1/3)
// Operand order is fixed so merged radii reproduce bit-for-bit
func SphereRadius(v float64) float64 {
	return math.Pow(((3.0/4.0)*v)/math.Pi, 1.0/3.0)
}

// Cube returns x³
func Cube(x float64) float64 {
	return x * x * x
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
