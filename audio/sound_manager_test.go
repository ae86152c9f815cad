package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/events"
	"github.com/lixenwraith/gravsim/parameter"
)

func TestThudGeneratorRangeAndDecay(t *testing.T) {
	g := NewThudGenerator(beep.SampleRate(44100), 120)
	samples := make([][2]float64, 44100/4)
	n, ok := g.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Stream returned n=%d ok=%v", n, ok)
	}

	peakHead, peakTail := 0.0, 0.0
	for i := 0; i < n; i++ {
		s := samples[i][0]
		if s < -1 || s > 1 {
			t.Fatalf("sample %d out of range: %f", i, s)
		}
		if samples[i][1] != s {
			t.Fatalf("sample %d not mono-identical", i)
		}
		abs := s
		if abs < 0 {
			abs = -abs
		}
		if i < n/4 && abs > peakHead {
			peakHead = abs
		}
		if i > 3*n/4 && abs > peakTail {
			peakTail = abs
		}
	}
	if peakTail >= peakHead {
		t.Errorf("thud should decay: head peak %f, tail peak %f", peakHead, peakTail)
	}
	if g.Err() != nil {
		t.Errorf("Err() = %v", g.Err())
	}
}

func TestBlipGeneratorFadesOut(t *testing.T) {
	sr := beep.SampleRate(44100)
	g := NewBlipGenerator(sr, 880)
	total := sr.N(parameter.SpawnSoundDuration)
	samples := make([][2]float64, total+10)
	g.Stream(samples)
	for i := total; i < len(samples); i++ {
		if samples[i][0] != 0 {
			t.Fatalf("sample %d after fade = %f, want 0", i, samples[i][0])
		}
	}
}

func TestMergeFrequency(t *testing.T) {
	if f := MergeFrequency(0.5); f != parameter.MergeSoundFreqMax {
		t.Errorf("tiny mass frequency = %v", f)
	}
	if f := MergeFrequency(1e30); f != parameter.MergeSoundFreqMin {
		t.Errorf("huge mass frequency = %v, want floor", f)
	}
	if MergeFrequency(1e6) <= MergeFrequency(1e8) {
		t.Error("heavier merges should sound lower")
	}
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager()
	if sm.PlayMerge(100) || sm.PlaySpawn() {
		t.Error("cues should be dropped before Initialize")
	}
	sm.SetMuted(true)
	if !sm.Muted() {
		t.Error("SetMuted(true) not reflected")
	}
	sm.Cleanup()
}

func TestHandlerSubscriptions(t *testing.T) {
	h := NewHandler(NewSoundManager())
	types := h.EventTypes()
	if len(types) != 2 {
		t.Fatalf("EventTypes = %v", types)
	}
	// Must tolerate events while audio is unavailable
	h.HandleEvent(engine.NewSimulation(engine.DefaultConfig()), events.Event{
		Type:    events.EventBodiesMerged,
		Payload: &events.BodiesMergedPayload{Mass: 10},
	})
}
