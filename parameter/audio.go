package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Merge Sound
const (
	MergeSoundDuration = 250 * time.Millisecond
	MergeSoundFreqMax  = 220.0
	MergeSoundFreqMin  = 40.0
	MergeSoundVolume   = 0.35
)

// Spawn Sound
const (
	SpawnSoundDuration = 40 * time.Millisecond
	SpawnSoundFreq     = 880.0
	SpawnSoundVolume   = 0.12

	// MinSoundGap between consecutive merge sounds, bursts of merges collapse into one
	MinSoundGap = 60 * time.Millisecond
)
