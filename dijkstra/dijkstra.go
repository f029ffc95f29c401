package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/georoute/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to the vertices of g, which must carry only non-negative weights.
//
// Returns:
//
//   - dist: map from vertex ID to distance (+Inf if unreached).
//   - prev: map from vertex ID to its predecessor on the best known path,
//     "" for the source and for unreached vertices.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Both maps contain every vertex of g and are owned by the caller.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. g must contain Target when set (ErrTargetNotFound).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
//
// Tie-break: among unsettled vertices with equal tentative distance, the one
// added to the graph first (lowest core.Graph.Index) is settled first.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != "" && !g.HasVertex(cfg.Target) {
		return nil, nil, fmt.Errorf("%w: %q", ErrTargetNotFound, cfg.Target)
	}

	// 2) Pre-scan all edges to detect negative weights. Fail fast.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s–%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 3) Initialize runner and run main loop.
	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph        // The input graph; read-only within Dijkstra.
	options Options            // Configuration options (Source, Target, MaxDistance).
	dist    map[string]float64 // Maps vertex ID → current best distance from Source.
	prev    map[string]string  // Maps vertex ID → predecessor on the best path.
	visited map[string]bool    // Tracks if a vertex's distance is final (settled).
	pq      nodePQ             // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist[v] = +Inf and prev[v] = "" for every vertex, dist[Source] = 0,
// and pushes Source onto the heap.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

// process repeatedly settles the unsettled vertex with the minimum distance
// and relaxes its half-edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices settled).
//   - The Target has just been settled.
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries (lazy decrease-key).
		if r.visited[u] {
			continue
		}
		if item.dist > cfg.MaxDistance {
			break
		}
		r.visited[u] = true

		// Once the target is settled its distance is final.
		if u == cfg.Target {
			break
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every half-edge leaving u and improves unsettled neighbors.
// Parallel edges are all examined; the cheapest one wins through the strict
// comparison below.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, h := range neighbors {
		v := h.To
		if r.visited[v] {
			continue
		}
		newDist := r.dist[u] + h.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict "<": equal distances keep the first predecessor found.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist)
	}

	return nil
}

// push adds (id, dist) to the heap, keyed by the vertex insertion index for tie-breaks.
func (r *runner) push(id string, dist float64) {
	idx, _ := r.g.Index(id)
	heap.Push(&r.pq, &nodeItem{id: id, order: idx, dist: dist})
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id    string  // vertex ID
	order int     // vertex insertion index, secondary key
	dist  float64 // distance from source, primary key
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, order) ascending.
// Outdated entries stay in the heap and are ignored when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by vertex insertion order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].order < pq[j].order
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element (heap.Pop has moved the minimum there).
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
