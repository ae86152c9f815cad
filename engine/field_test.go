package engine

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/physics"
)

func TestFieldGridLayout(t *testing.T) {
	f := NewFieldSampler(0.001, 30, 95, 61)
	cols, rows := f.dims()
	if cols != 3 || rows != 2 {
		t.Fatalf("dims = %d x %d, want 3 x 2", cols, rows)
	}
	samples := f.Samples()
	if len(samples) != 6 {
		t.Fatalf("len(samples) = %d, want 6", len(samples))
	}
	if samples[0].Pos != (r2.Vec{X: 15, Y: 15}) || samples[5].Pos != (r2.Vec{X: 75, Y: 45}) {
		t.Errorf("unexpected grid positions: first %v last %v", samples[0].Pos, samples[5].Pos)
	}

	f.Resize(30, 30)
	if len(f.Samples()) != 1 {
		t.Errorf("after Resize len = %d, want 1", len(f.Samples()))
	}
}

func TestFieldSampleUnitMass(t *testing.T) {
	const g = 0.001
	f := NewFieldSampler(g, 30, 60, 30)
	body := core.NewBody(0, r2.Vec{X: 15, Y: 15}, r2.Vec{}, 5, 5000, false, 0)

	f.Sample([]*core.Body{body})
	samples := f.Samples()

	if samples[0].Force != (r2.Vec{}) {
		t.Errorf("point inside body should be skipped, got %v", samples[0].Force)
	}

	want := physics.Force(g, 30, math.Pi, 1, body.Mass)
	got := samples[1].Force
	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 {
		t.Errorf("field at (45,15) = %v, want %v", got, want)
	}
	if got.X >= 0 {
		t.Error("field should point toward the body")
	}
}

func TestFieldSampleResetsEachCycle(t *testing.T) {
	f := NewFieldSampler(0.001, 30, 60, 30)
	body := core.NewBody(0, r2.Vec{X: 200, Y: 15}, r2.Vec{}, 5, 5000, false, 0)
	f.Sample([]*core.Body{body})
	f.Sample(nil)
	for _, s := range f.Samples() {
		if s.Force != (r2.Vec{}) {
			t.Fatalf("stale force %v after sampling an empty set", s.Force)
		}
	}
}

func TestFieldSamplerDoesNotMutateBodies(t *testing.T) {
	f := NewFieldSampler(0.001, 30, 120, 120)
	body := core.NewBody(0, r2.Vec{X: 50, Y: 50}, r2.Vec{X: 1}, 3, 5000, false, 0)
	before := *body
	f.Sample([]*core.Body{body})
	if body.Kinetic != before.Kinetic || body.Mass != before.Mass {
		t.Error("sampler mutated a body")
	}
}
