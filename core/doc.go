// Package core provides the thread-safe, in-memory undirected Graph that every
// coloring mode reads from and writes into.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, unweighted, simple: AddEdge(u,v) mirrors v→u, parallel
//     edges collapse into the neighbor set, self-loops are rejected.
//   - Vertices are identified by non-negative integer IDs and stored in an
//     arena (a slice of Vertex records). The ID maps to an arena index, so
//     neighbor sets hold indices and no per-vertex heap object exists.
//   - Every vertex carries one color slot. NoColor (0) means “unset”;
//     legal colors start at 1.
//   - Deterministic iteration: Vertices(), Edges(), NeighborIDs() return
//     results sorted ascending by ID.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int) error            // O(1), idempotent
//	AddVertices(ids ...int) error      // O(k)
//	HasVertex(id int) bool             // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v int) error            // O(1); missing endpoint → ErrVertexNotFound
//	MustAddEdge(u, v int)              // panics on precondition violation
//	HasEdge(u, v int) bool             // O(1)
//
//	// Query
//	NeighborIDs(id int) ([]int, error) // O(d·log d), sorted
//	Degree(id int) (int, error)        // O(1)
//	MaxDegree() int                    // O(V)
//	Vertices() []int                   // O(V·log V)
//	Edges() []Edge                     // O(E·log E), U < V
//
//	// Colors
//	Color(id int) (int, error)
//	SetColor(id, color int) error
//	NeighborColors(id int) ([]int, error)
//	Snapshot(ids []int) ([]Vertex, error)
//	ApplyColors(vs []Vertex) error
//	ClearColors()
//
//	// Copies
//	Clone() *Graph
//	Topology() Topology / FromTopology(t Topology) (*Graph, error)
//
// Concurrency:
//
// A single sync.RWMutex (mu) guards the topology: the arena slice header, the
// ID index and the neighbor sets. Color reads and writes take only the read
// lock; they do NOT serialize writers of the same vertex. Callers that mutate
// colors from several goroutines must coordinate per vertex themselves (the
// coloring package does this with its LockManager).
//
// Errors:
//
//	ErrInvalidVertexID – negative vertex ID
//	ErrVertexNotFound  – missing vertex (precondition violation on AddEdge)
//	ErrLoopNotAllowed  – AddEdge(v,v)
//	ErrInvalidColor    – negative color value
package core
