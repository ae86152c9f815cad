package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gravsim/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager plays short synthesized cues through a shared mixer
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastMerge   time.Time
	lastSpawn   time.Time
	now         func() time.Time
}

// NewSoundManager creates an uninitialized manager; cues are dropped until Initialize succeeds
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup clears queued sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// SetMuted silences future cues without closing the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// Muted reports mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayMerge plays a thud whose pitch falls as merged mass grows
// Merges closer together than MinSoundGap collapse into one cue
func (sm *SoundManager) PlayMerge(mass float64) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}
	now := sm.now()
	if now.Sub(sm.lastMerge) < parameter.MinSoundGap {
		return false
	}
	sm.lastMerge = now

	streamer := beep.Take(sampleRate.N(parameter.MergeSoundDuration), NewThudGenerator(sampleRate, MergeFrequency(mass)))
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// PlaySpawn plays a short blip; a grid spawn yields one blip, not one per body
func (sm *SoundManager) PlaySpawn() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}
	now := sm.now()
	if now.Sub(sm.lastSpawn) < parameter.MinSoundGap {
		return false
	}
	sm.lastSpawn = now
	streamer := beep.Take(sampleRate.N(parameter.SpawnSoundDuration), NewBlipGenerator(sampleRate, parameter.SpawnSoundFreq))
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// MergeFrequency maps merged mass to a pitch between MergeSoundFreqMin and MergeSoundFreqMax
// Log scale: every decade of mass drops the pitch by a fixed step
func MergeFrequency(mass float64) float64 {
	if mass <= 1 {
		return parameter.MergeSoundFreqMax
	}
	freq := parameter.MergeSoundFreqMax - 20*math.Log10(mass)
	if freq < parameter.MergeSoundFreqMin {
		return parameter.MergeSoundFreqMin
	}
	return freq
}

// ThudGenerator is a decaying sine with a slight downward pitch bend
type ThudGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewThudGenerator(sr beep.SampleRate, freq float64) *ThudGenerator {
	return &ThudGenerator{sr: sr, freq: freq}
}

func (g *ThudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Pitch bends down 30% over the first 100ms
		bend := 1 - 0.3*math.Min(t/0.1, 1)
		envelope := math.Exp(-t * 14)
		sample := parameter.MergeSoundVolume * envelope * math.Sin(2*math.Pi*g.freq*bend*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThudGenerator) Err() error {
	return nil
}

// BlipGenerator is a short sine with a linear fade out
type BlipGenerator struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

func NewBlipGenerator(sr beep.SampleRate, freq float64) *BlipGenerator {
	return &BlipGenerator{sr: sr, freq: freq, total: sr.N(parameter.SpawnSoundDuration)}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		fade := 1 - float64(g.pos)/float64(g.total)
		if fade < 0 {
			fade = 0
		}
		sample := parameter.SpawnSoundVolume * fade * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}
