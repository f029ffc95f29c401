// Package bellmanford implements the Bellman-Ford edge-relaxation
// shortest-path algorithm on the undirected core.Graph store.
//
// Unlike Dijkstra it tolerates negative edge weights and detects negative
// cycles reachable from the source.
//
// Algorithm:
//
//  1. dist[source] = 0, dist[v] = +Inf otherwise; prev[v] = "".
//  2. Materialize every half-edge once (two per undirected edge, in
//     core.Graph.HalfEdges order).
//  3. Repeat up to |V|-1 passes relaxing each half-edge where
//     dist[src] + w < dist[dst]. A pass with no update is a fixed point and
//     ends the loop early.
//  4. One more pass: if any half-edge still relaxes, a negative cycle is
//     reachable and the run fails with ErrNegativeCycle.
//
// State machine: Initialized → Relaxing → {Settled | NegativeCycleDetected}.
//
// Complexity:
//
//   - Time:  O(V · E) worst case, O(E) when the first pass is already a fixed point.
//   - Space: O(V + E)
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph, ErrVertexNotFound: invalid inputs.
//   - ErrNegativeCycle: terminal failure; no distance or predecessor map is returned.
//
// Thread safety:
//
//   - Each call owns its maps; concurrent calls on a frozen graph are safe.
package bellmanford
