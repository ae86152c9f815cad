package parameter

// Frame Loop
const (
	// DefaultFPS is the frame rate when none is configured
	DefaultFPS = 60

	// MaxFrameDelta caps dt after a stall (terminal resize, suspend) to keep integration stable
	MaxFrameDelta = 0.1

	// PreviewSpeedup multiplies frame dt when advancing the launch preview
	PreviewSpeedup = 12.0

	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Field Sampler
const (
	// FieldSpacing is the distance between field sample points (world units)
	FieldSpacing = 30.0

	// FieldUpdatePeriod is the simulation time between field samples (seconds)
	FieldUpdatePeriod = 0.5
)

// Spawning
const (
	// SpawnRadius is the default radius for pointer spawns
	SpawnRadius = 5.0

	// SpawnRadiusMin and SpawnRadiusMax bound the pointer spawn radius
	SpawnRadiusMin = 1.0
	SpawnRadiusMax = 100.0

	// MaxLaunchSpeed caps drag-launch velocity (world units per second)
	MaxLaunchSpeed = 600.0

	// GridSeparation is the gap between grid bodies (added to radius on each side)
	GridSeparation = 5.0

	// GridCols and GridRows size the pointer grid spawn
	GridCols = 10
	GridRows = 10

	// DragThreshold is the pointer travel (world units) that refreshes the preview
	DragThreshold = 2.0
)
