// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, Degree).
// Determinism:
//   - Neighbors() keeps adjacency insertion order; parallel edges appear once each.
//   - NeighborIDs() returns unique IDs in first-seen order.
// Concurrency:
//   - Read operations hold mu read lock.

package core

// Neighbors returns the half-edges leaving id, in the order their edges were added.
//
// Behavior highlights:
//   - Every half-edge has From == id.
//   - Parallel edges are repeated; a self-loop appears twice.
//   - The returned slice is a copy; callers may keep it after the call.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]HalfEdge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]HalfEdge, len(g.adjacency[i]))
	copy(out, g.adjacency[i])

	return out, nil
}

// NeighborIDs returns the distinct vertices adjacent to id in first-seen order.
// Errors are the same as Neighbors.
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	hs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(hs))
	out := make([]string, 0, len(hs))
	for _, h := range hs {
		if _, dup := seen[h.To]; dup {
			continue
		}
		seen[h.To] = struct{}{}
		out = append(out, h.To)
	}

	return out, nil
}

// Degree returns the number of half-edges leaving id (self-loops count twice).
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacency[i]), nil
}
