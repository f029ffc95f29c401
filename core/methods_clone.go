// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: configuration, vertices (same
// insertion order), edges and adjacency. The clone is never frozen, so it can
// be extended and frozen again independently of the source.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		nextEdgeID: g.nextEdgeID,
		order:      make([]string, len(g.order)),
		index:      make(map[string]int, len(g.index)),
		adjacency:  make([][]HalfEdge, len(g.adjacency)),
		edges:      make([]*Edge, len(g.edges)),
	}
	copy(clone.order, g.order)
	for id, i := range g.index {
		clone.index[id] = i
	}
	for i, adj := range g.adjacency {
		if adj == nil {
			continue
		}
		clone.adjacency[i] = make([]HalfEdge, len(adj))
		copy(clone.adjacency[i], adj)
	}
	for i, e := range g.edges {
		ce := *e
		clone.edges[i] = &ce
	}

	return clone
}
