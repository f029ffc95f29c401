// Package dijkstra implements Dijkstra's label-setting shortest-path algorithm
// on the undirected core.Graph store with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes minimum-cost distances from one source vertex in
//     O((V + E) log V) using a binary min-heap with lazy decrease-key.
//   - It always returns a predecessor map so callers can rebuild any path.
//   - An optional Target stops the run as soon as that vertex is settled:
//     with non-negative weights the first time a vertex leaves the heap its
//     distance is final.
//
// Tie-break rule:
//
//   - When several unsettled vertices share the minimum tentative distance,
//     the one added to the graph first is settled first. The heap is keyed
//     by (distance, insertion index), which settles vertices in exactly the
//     order a linear scan over the unsettled set in insertion order would.
//   - A neighbor's predecessor only changes on a strictly shorter distance.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph, ErrVertexNotFound, ErrTargetNotFound:
//     invalid inputs, checked in this order.
//   - ErrNegativeWeight: any negative edge weight (O(E) pre-scan). Use the
//     bellmanford package for graphs with negative weights.
//   - ErrBadMaxDistance: raised by panic from WithMaxDistance.
//
// API reference:
//
//	func Dijkstra(
//	    g *core.Graph,
//	    opts ...Option,
//	) (dist map[string]float64, prev map[string]string, err error)
//
//	  - opts:
//	      • Source(string):             required, the starting vertex ID.
//	      • WithTarget(string):         stop once this vertex is settled.
//	      • WithMaxDistance(float64):   explore only vertices with distance ≤ value.
//	  - dist: dist[v] = shortest distance, or +Inf if v was not reached.
//	  - prev: prev[v] = predecessor of v, "" for the source or unreached v.
//
// Thread safety:
//
//   - Each call allocates its own maps and heap; concurrent calls on the same
//     graph are safe. Freeze the graph before sharing it between queries.
package dijkstra
