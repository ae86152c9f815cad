package input

// IntentType discriminates semantic actions bound to keys
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Ctrl+C, Esc
	IntentToggleMute // m

	// Simulation control
	IntentTogglePause  // p
	IntentToggleField  // f
	IntentToggleTrails // t
	IntentClear        // c

	// Spawn size
	IntentGrowSpawn   // Up
	IntentShrinkSpawn // Down
)

var intentNames = map[IntentType]string{
	IntentNone:         "none",
	IntentQuit:         "quit",
	IntentToggleMute:   "toggle_mute",
	IntentTogglePause:  "toggle_pause",
	IntentToggleField:  "toggle_field",
	IntentToggleTrails: "toggle_trails",
	IntentClear:        "clear",
	IntentGrowSpawn:    "grow_spawn",
	IntentShrinkSpawn:  "shrink_spawn",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}
