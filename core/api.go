// File: api.go
// Role: Thin public facade: policy getters, Freeze and Stats.
// Policy:
//   - No algorithms here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	AllowsMulti   bool // parallel edges permitted
	AllowsLoops   bool // self-loops permitted
	Frozen        bool // mutation rejected
	VertexCount   int  // |V|
	EdgeCount     int  // undirected edges
	HalfEdgeCount int  // 2·|E|
	Isolated      int  // vertices with no incident edge
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Looped reports whether self-loops are permitted.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Freeze marks the graph immutable. Subsequent AddVertex/AddEdge calls
// return ErrFrozen; queries are unaffected. Freeze is idempotent.
//
// A frozen graph may be shared by any number of concurrent queries.
// Complexity: O(1). Concurrency: write lock.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// Stats produces a deterministic snapshot of flags and counts.
// Complexity: O(V). Concurrency: read lock.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		AllowsMulti:   g.allowMulti,
		AllowsLoops:   g.allowLoops,
		Frozen:        g.frozen,
		VertexCount:   len(g.order),
		EdgeCount:     len(g.edges),
		HalfEdgeCount: 2 * len(g.edges),
	}
	for _, adj := range g.adjacency {
		if len(adj) == 0 {
			stats.Isolated++
		}
	}

	return &stats
}
