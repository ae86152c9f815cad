package parameter

// Viewport
const (
	// CellWidth and CellHeight are world units per terminal cell
	// Terminal cells are roughly twice as tall as wide
	CellWidth  = 10.0
	CellHeight = 20.0
)

// Status Bar
const (
	// StatusBarHeight reserves rows at the bottom of the screen
	StatusBarHeight = 1

	PausedText  = " PAUSED "
	RunningText = " RUN    "
	AudioStr    = "♫ "
)

// Field Arrows
const (
	// FieldArrowMinLevel hides arrows whose normalized magnitude is below this level
	FieldArrowMinLevel = 0.05
)
