// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Index/Vertices/VertexCount.
// Determinism:
//   - Vertices() returns IDs in insertion order.
//   - Index(id) is the insertion position and is used by engines as tie-break key.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

// AddVertex inserts a new vertex with the given ID and an empty adjacency list.
//
// Behavior highlights:
//   - Idempotent: adding an existing ID is a no-op and keeps its original position.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrFrozen: if the graph has been frozen.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	if _, exists := g.index[id]; exists {
		return nil // no-op for existing vertex
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	g.adjacency = append(g.adjacency, nil)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.index[id]

	return exists
}

// Index returns the insertion position of id (0 for the first vertex added)
// and whether the vertex exists.
// Complexity: O(1).
func (g *Graph) Index(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]

	return i, ok
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a copy and may be modified by the caller.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}
