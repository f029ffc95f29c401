// Package core provides the thread-safe in-memory Graph store consumed by the
// shortest-path engines (dijkstra, bellmanford) and the route facade.
//
// The Graph G = (V,E) is undirected and weighted:
//
//   - Every edge (A,B,w) is traversable A→B and B→A with the same weight and
//     is stored as two half-edges, one in each endpoint's adjacency list.
//   - Parallel edges and self-loops are kept by default (multigraph); the
//     engines pick the cheapest parallel edge through ordinary relaxation.
//   - Vertices and adjacency lists keep insertion order, which makes engine
//     tie-breaks reproducible.
//   - A single sync.RWMutex guards all state: writers (AddVertex, AddEdge,
//     Freeze) are exclusive, queries share the read lock.
//
// Lifecycle:
//
//	g := core.NewGraph()
//	g.AddVertex("A"); g.AddVertex("B")   // vertices first
//	g.AddEdge("A", "B", 5)                // then edges between known vertices
//	g.Freeze()                            // immutable for the lifetime of all queries
//
// Configuration Options (GraphOption):
//
//	– WithoutMultiEdges()  second edge between the same pair → ErrMultiEdgeNotAllowed
//	– WithoutLoops()       AddEdge(v,v,…) → ErrLoopNotAllowed
//
// Core Methods:
//
//	AddVertex(id string) error                              // O(1), idempotent
//	AddEdge(a, b string, w float64) (edgeID string, error)  // O(1)
//	HasVertex(id) bool, Index(id) (int, bool)               // O(1)
//	HasEdge(a, b) bool                                      // O(deg(a))
//	Neighbors(id) ([]HalfEdge, error)                       // O(deg), insertion order
//	NeighborIDs(id) ([]string, error)                       // O(deg), unique
//	Degree(id) (int, error)                                 // O(1)
//	Vertices() []string                                     // O(V), insertion order
//	Edges() []*Edge                                         // O(E), insertion order
//	HalfEdges() []HalfEdge                                  // O(V+E), 2 per edge
//	VertexCount(), EdgeCount()                              // O(1)
//	Freeze(), Frozen(), Stats(), Clone()
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex in a query
//	ErrInvalidReference    – AddEdge endpoint never added
//	ErrBadWeight           – NaN or ±Inf weight
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//	ErrFrozen              – mutation after Freeze
package core
