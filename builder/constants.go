// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodGilbert is the canonical name for the Gilbert G(n,p) constructor.
	MethodGilbert = "Gilbert"
	// MethodWattsStrogatz is the canonical name for the Watts-Strogatz constructor.
	MethodWattsStrogatz = "WattsStrogatz"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodBuildConnected is the context prefix of the regeneration loop.
	MethodBuildConnected = "BuildConnected"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinGilbertNodes is the smallest vertex count accepted by Gilbert.
const MinGilbertNodes = 1

// MinWattsStrogatzNodes is the smallest vertex count accepted by WattsStrogatz.
// Together with MinHalfDegree and 2k < n the effective minimum is 3.
const MinWattsStrogatzNodes = 1

// MinHalfDegree is the smallest ring-lattice half-degree k.
const MinHalfDegree = 1

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a valid ring without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a path (one edge).
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star topology.
// A star requires one center plus at least one leaf (2 nodes total).
const MinStarNodes = 2

// MinCompleteNodes is the smallest size for K_n.
const MinCompleteNodes = 1

//-----------------------------------------------------------------------------
// Probability Bounds & Budgets
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for probability parameters, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for probability parameters, inclusive.
const MaxProbability = 1.0

// DefaultMaxAttempts bounds the regeneration loop of BuildConnected.
const DefaultMaxAttempts = 1000

// DefaultLabel names a build in logs and observer events when WithLabel is not set.
const DefaultLabel = "graph"
