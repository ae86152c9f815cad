package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows)
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings, matched case-insensitively
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyUp:     IntentGrowSpawn,
			tcell.KeyDown:   IntentShrinkSpawn,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'p': IntentTogglePause,
			' ': IntentTogglePause,
			'f': IntentToggleField,
			't': IntentToggleTrails,
			'c': IntentClear,
			'm': IntentToggleMute,
			'+': IntentGrowSpawn,
			'-': IntentShrinkSpawn,
		},
	}
}

// Lookup resolves a key event to an intent
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return kt.Runes[r]
	}
	return kt.SpecialKeys[ev.Key()]
}
