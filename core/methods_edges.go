// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount/HalfEdges,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - HalfEdges() walks vertices in insertion order, then each adjacency list in order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"fmt"
	"math"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge connects two existing vertices with an undirected edge of the
// given weight and returns its ID.
//
// Steps:
//  1. Validate IDs and weight.
//  2. Lock mu; reject if frozen.
//  3. Resolve both endpoints; a missing one is ErrInvalidReference.
//  4. Enforce loop and multi-edge policy.
//  5. Append (to, w) to from's adjacency and (from, w) to to's adjacency.
//
// Negative weights are stored as given; Dijkstra rejects them at query time
// while Bellman-Ford reports any reachable one as a negative cycle.
// A self-loop contributes two half-edges to the same adjacency list.
//
// Errors: ErrEmptyVertexID, ErrBadWeight, ErrFrozen, ErrInvalidReference,
// ErrLoopNotAllowed, ErrMultiEdgeNotAllowed. On error the graph is unchanged.
//
// Complexity: O(1) amortized; O(deg(from)) when multi-edges are disabled.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", fmt.Errorf("%w: %s–%s weight=%v", ErrBadWeight, from, to, weight)
	}

	// 2) Mutate under lock
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return "", ErrFrozen
	}

	// 3) Both endpoints must already exist
	fi, ok := g.index[from]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidReference, from)
	}
	ti, ok := g.index[to]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidReference, to)
	}

	// 4) Policy checks
	if fi == ti && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if !g.allowMulti {
		for _, h := range g.adjacency[fi] {
			if h.To == to {
				return "", ErrMultiEdgeNotAllowed
			}
		}
	}

	// 5) Store edge and both half-edges
	eid := nextEdgeID(g)
	g.edges = append(g.edges, &Edge{ID: eid, From: from, To: to, Weight: weight})
	g.adjacency[fi] = append(g.adjacency[fi], HalfEdge{EdgeID: eid, From: from, To: to, Weight: weight})
	g.adjacency[ti] = append(g.adjacency[ti], HalfEdge{EdgeID: eid, From: to, To: from, Weight: weight})

	return eid, nil
}

// HasEdge reports whether at least one edge joins a and b (in either order).
// Complexity: O(deg(a)).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ai, ok := g.index[a]
	if !ok {
		return false
	}
	for _, h := range g.adjacency[ai] {
		if h.To == b {
			return true
		}
	}

	return false
}

// Edges returns all undirected edges in insertion order.
// The returned *Edge values are shared with the graph and must be treated as read-only.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HalfEdges returns every directed half-edge of the graph. Each undirected
// edge yields exactly two entries, one per traversal direction.
//
// Order: vertices in insertion order; for each vertex its adjacency list in
// insertion order. Bellman-Ford relaxes in exactly this order.
//
// Complexity: O(V + E).
func (g *Graph) HalfEdges() []HalfEdge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]HalfEdge, 0, 2*len(g.edges))
	for _, adj := range g.adjacency {
		out = append(out, adj...)
	}

	return out
}

// nextEdgeID returns a new unique textual edge ID. Caller must hold mu.
func nextEdgeID(g *Graph) string {
	g.nextEdgeID++
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}
