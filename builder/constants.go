package builder

// Canonical constructor names, used to prefix errors.
const (
	MethodComplete          = "Complete"
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomEdges       = "RandomEdges"
	MethodRandomRegular     = "RandomRegular"
)

// Minimum sizes per topology.
const (
	// MinCycleNodes: a ring needs three vertices without loops or multi-edges.
	MinCycleNodes = 3
	// MinPathNodes: a path with fewer than two vertices has no edges.
	MinPathNodes = 2
	// MinStarNodes: one hub plus at least one leaf.
	MinStarNodes = 2
	// MinWheelNodes: a 3-cycle rim plus the hub.
	MinWheelNodes = 4
	// MinGridDim: a 1×1 grid has no edges but is valid.
	MinGridDim = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// maxStubMatchingAttempts bounds RandomRegular reshuffles.
const maxStubMatchingAttempts = 1000
