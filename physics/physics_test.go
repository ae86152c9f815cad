package physics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/vmath"
)

const (
	testG       = 0.001
	testDensity = 5000.0
	tol         = 1e-9
)

func near(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= tol*scale
}

func nearVec(a, b r2.Vec) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestForceMagnitudeAndDirection(t *testing.T) {
	f := Force(testG, 10, 0, 1, 1)
	want := testG * 1 * 1 / 100
	if !near(f.X, want) || !near(f.Y, 0) {
		t.Errorf("Force = %v, want {%v 0}", f, want)
	}

	f = Force(testG, 2, math.Pi/2, 3, 4)
	want = testG * 12 / 4
	if !near(f.Y, want) || math.Abs(f.X) > tol {
		t.Errorf("Force = %v, want {0 %v}", f, want)
	}
}

func TestPairForceThirdLaw(t *testing.T) {
	tests := []struct {
		name       string
		posA, posB r2.Vec
		mA, mB     float64
	}{
		{"horizontal", r2.Vec{}, r2.Vec{X: 10}, 1, 1},
		{"diagonal", r2.Vec{X: -3, Y: 7}, r2.Vec{X: 11, Y: -2}, 120, 0.5},
		{"large masses", r2.Vec{X: 100, Y: 100}, r2.Vec{X: 400, Y: 250}, 1e7, 3e5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			onA, onB := PairForce(testG, tt.posA, tt.mA, tt.posB, tt.mB)
			if onA.X != -onB.X || onA.Y != -onB.Y {
				t.Errorf("forces not exactly opposite: onA=%v onB=%v", onA, onB)
			}
			// onA points from A toward B
			dir := r2.Sub(tt.posB, tt.posA)
			if r2.Dot(onA, dir) <= 0 {
				t.Errorf("force on A %v does not point toward B", onA)
			}
		})
	}
}

func TestIntegrate(t *testing.T) {
	k := core.Kinetic{
		Pos:   r2.Vec{X: 1, Y: 1},
		Vel:   r2.Vec{X: 2},
		Force: r2.Vec{Y: 4},
	}
	Integrate(&k, 2, 0.5)

	// v = (2,0) + (0,4)/2*0.5 = (2,1); p = (1,1) + (2,1)*0.5 = (2,1.5)
	if !nearVec(k.Vel, r2.Vec{X: 2, Y: 1}) {
		t.Errorf("Vel = %v, want {2 1}", k.Vel)
	}
	if !nearVec(k.Pos, r2.Vec{X: 2, Y: 1.5}) {
		t.Errorf("Pos = %v, want {2 1.5}", k.Pos)
	}
}

func TestForceAccumulator(t *testing.T) {
	var k core.Kinetic
	AddForce(&k, r2.Vec{X: 1})
	AddForce(&k, r2.Vec{X: 2, Y: -1})
	if k.Force != (r2.Vec{X: 3, Y: -1}) {
		t.Errorf("Force = %v", k.Force)
	}
	ResetForce(&k)
	if k.Force != (r2.Vec{}) {
		t.Errorf("Force after reset = %v", k.Force)
	}
}

func TestOverlaps(t *testing.T) {
	a := r2.Vec{}
	if !Overlaps(a, 2, r2.Vec{X: 5}, 3) {
		t.Error("touching discs should overlap")
	}
	if Overlaps(a, 2, r2.Vec{X: 5.01}, 3) {
		t.Error("separated discs should not overlap")
	}
}

func TestRank(t *testing.T) {
	small := core.NewBody(1, r2.Vec{}, r2.Vec{}, 1, testDensity, false, 0)
	large := core.NewBody(2, r2.Vec{}, r2.Vec{}, 3, testDensity, false, 0)

	if big, sm := Rank(small, large); big != large || sm != small {
		t.Error("larger radius should rank big regardless of order")
	}

	twin := core.NewBody(3, r2.Vec{}, r2.Vec{}, 1, testDensity, false, 0)
	if big, _ := Rank(small, twin); big != small {
		t.Error("exact tie should keep first argument as big")
	}

	anchor := core.NewBody(4, r2.Vec{}, r2.Vec{}, 0.5, testDensity, true, 0)
	if big, sm := Rank(large, anchor); big != anchor || sm != large {
		t.Error("stationary body must never be the small side")
	}

	if CanMerge(anchor, core.NewBody(5, r2.Vec{}, r2.Vec{}, 2, testDensity, true, 0)) {
		t.Error("two stationary bodies must not merge")
	}
	if !CanMerge(anchor, large) {
		t.Error("stationary and mobile bodies should merge")
	}
}

func TestMergeConservesMomentumAndMass(t *testing.T) {
	a := core.NewBody(1, r2.Vec{X: 0}, r2.Vec{X: 3, Y: -1}, 2, testDensity, false, 0)
	b := core.NewBody(2, r2.Vec{X: 3}, r2.Vec{X: -1, Y: 4}, 1.8, testDensity, false, 0)

	m1, m2 := a.Mass, b.Mass
	wantP := r2.Add(r2.Scale(m1, a.Vel), r2.Scale(m2, b.Vel))

	big, small := Rank(a, b)
	res := Merge(big, small, testDensity)

	if res.Survivor != 1 || res.Removed != 2 {
		t.Errorf("MergeResult = %+v", res)
	}
	if !near(a.Mass, m1+m2) {
		t.Errorf("mass = %v, want %v", a.Mass, m1+m2)
	}
	if !nearVec(a.Momentum(), wantP) {
		t.Errorf("momentum = %v, want %v", a.Momentum(), wantP)
	}
}

func TestMergeVolumeRoundTrip(t *testing.T) {
	a := core.NewBody(1, r2.Vec{}, r2.Vec{}, 4, testDensity, false, 0)
	b := core.NewBody(2, r2.Vec{X: 1}, r2.Vec{}, 3, testDensity, false, 0)
	v1, v2 := a.Volume(testDensity), b.Volume(testDensity)

	Merge(a, b, testDensity)

	wantR := math.Pow(((3.0/4.0)*(v1+v2))/math.Pi, 1.0/3.0)
	if a.Radius != wantR {
		t.Errorf("radius = %v, want exactly %v", a.Radius, wantR)
	}
	// Volume implied by new radius through the same formula equals mass/density
	if !near(vmath.SphereRadius(a.Mass/testDensity), a.Radius) {
		t.Errorf("mass/density does not round trip to radius %v", a.Radius)
	}
}

func TestMergeAbsorptionKeepsPosition(t *testing.T) {
	big := core.NewBody(1, r2.Vec{X: 100, Y: 100}, r2.Vec{}, 40, testDensity, false, 0)
	small := core.NewBody(2, r2.Vec{X: 140, Y: 100}, r2.Vec{X: 5}, 1, testDensity, false, 0)

	res := Merge(big, small, testDensity)
	if !res.Absorbed {
		t.Error("40:1 radius ratio should absorb")
	}
	if big.Pos != (r2.Vec{X: 100, Y: 100}) {
		t.Errorf("absorbing body moved to %v", big.Pos)
	}
}

func TestMergeSimilarSizesUseMidpoint(t *testing.T) {
	a := core.NewBody(1, r2.Vec{X: 0, Y: 0}, r2.Vec{}, 1.2, testDensity, false, 0)
	b := core.NewBody(2, r2.Vec{X: 2, Y: 2}, r2.Vec{}, 1, testDensity, false, 0)

	// (1.2)^3 = 1.728 <= 2: true merge
	res := Merge(a, b, testDensity)
	if res.Absorbed {
		t.Error("similar sizes should not absorb")
	}
	if !nearVec(a.Pos, r2.Vec{X: 1, Y: 1}) {
		t.Errorf("merged position = %v, want midpoint {1 1}", a.Pos)
	}
}

func TestMergeStationarySurvivorStaysFixed(t *testing.T) {
	anchor := core.NewBody(1, r2.Vec{X: 10, Y: 10}, r2.Vec{}, 1, testDensity, true, 0)
	rock := core.NewBody(2, r2.Vec{X: 11, Y: 10}, r2.Vec{X: -7}, 1, testDensity, false, 0)

	big, small := Rank(rock, anchor)
	Merge(big, small, testDensity)

	if anchor.Pos != (r2.Vec{X: 10, Y: 10}) || anchor.Vel != (r2.Vec{}) {
		t.Errorf("stationary survivor changed kinematics: pos=%v vel=%v", anchor.Pos, anchor.Vel)
	}
	if anchor.Mass <= rock.Mass {
		t.Error("stationary survivor should gain mass")
	}
}

func TestMergeSmallStationarySurvivorReportsAbsorbed(t *testing.T) {
	anchor := core.NewBody(1, r2.Vec{X: 0, Y: 0}, r2.Vec{}, 1, testDensity, true, 0)
	boulder := core.NewBody(2, r2.Vec{X: 4, Y: 0}, r2.Vec{X: 2}, 5, testDensity, false, 0)

	big, small := Rank(boulder, anchor)
	if big != anchor {
		t.Fatal("stationary body should survive even when smaller")
	}
	res := Merge(big, small, testDensity)

	if !res.Absorbed {
		t.Error("stationary survivor keeps its position, merge should report absorbed")
	}
	if res.Survivor != anchor.ID || res.Removed != boulder.ID {
		t.Errorf("result = %+v", res)
	}
	if anchor.Pos != (r2.Vec{}) {
		t.Errorf("anchor moved to %v", anchor.Pos)
	}
}
