package parameter

// Scene generation bounds
const (
	// DefaultRectWidth and DefaultRectHeight define the sampling domain
	DefaultRectWidth  = 15.0
	DefaultRectHeight = 20.0

	// MaxCircles and MaxTriangles bound the spawned count; at least one of each is spawned
	MaxCircles   = 3
	MaxTriangles = 3

	// MaxCircleRadius and MaxTriangleSide bound spawned sizes (exclusive)
	MaxCircleRadius = 4.0
	MaxTriangleSide = 4.0

	// FullTurnDegrees bounds spawned triangle angles (exclusive)
	FullTurnDegrees = 360.0
)
