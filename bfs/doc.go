// Package bfs provides breadth-first search over a core.Graph, ignoring edge
// weights: fewest-hop paths, reachability and connected components.
//
// What
//
//   - BFS(g, start, opts...) returns a Result with:
//   - Order: visit sequence
//   - Hops: vertex → link count from start
//   - Parent: vertex → predecessor in the BFS tree
//   - Components(g) and ComponentIndex(g) partition the graph.
//
// Why
//
//	A shortest-path query between two vertices in different components can
//	never find a route. Components gives callers that answer in O(V + E)
//	without running a weighted engine, and lets them cross-check engine
//	output.
//
// Determinism
//
//	Neighbors are expanded in core.NeighborIDs order (first-seen adjacency
//	order), and Components walks vertices in insertion order.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx): cancellation, checked once per dequeued vertex.
//   - WithMaxHops(h):   stop exploring beyond h links (h > 0); 0 = unlimited.
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation.
package bfs
