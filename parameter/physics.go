package parameter

// Gravity & Matter
const (
	// G scales the inverse-square attraction to screen-sized worlds
	G = 0.001

	// Density converts body volume to mass (mass units per cubic world unit)
	Density = 5000.0

	// MergeAbsorbRatio is the volume ratio above which the larger body keeps its position on merge
	MergeAbsorbRatio = 2.0
)

// Identity
const (
	// MaxBodyID is the id counter value that wraps back to 0
	MaxBodyID = 4294967294
)

// Trails
const (
	// TrailMaxNodes bounds real body trails, 0 = unbounded
	TrailMaxNodes = 600

	// PreviewTrailMax bounds the preview trail so a stable orbit forecast cannot grow forever
	PreviewTrailMax = 2000

	// TrailLifetime is the age in simulation seconds after which a trail node is fully faded
	TrailLifetime = 20.0
)
