package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/georoute/core"
)

// BellmanFord computes shortest distances from Options.Source over every
// half-edge of g. Negative weights are accepted; a negative cycle reachable
// from the source is reported as ErrNegativeCycle.
//
// Returns:
//
//   - dist: map from vertex ID to distance (+Inf if unreachable).
//   - prev: map from vertex ID to predecessor, "" for the source and for
//     unreachable vertices.
//   - err:  validation error or ErrNegativeCycle; the maps are nil on error.
//
// Note that in an undirected graph any reachable negative edge (a,b) forms
// the cycle a→b→a, so it is always reported as a negative cycle.
//
// Complexity:
//
//   - Time:  O(V · E)
//   - Space: O(V + E)
func BellmanFord(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	dist, prev, _, err := Run(g, opts...)

	return dist, prev, err
}

// Run is BellmanFord that also reports pass statistics.
//
// Steps:
//  1. Validate Options and graph.
//  2. Initialize dist/prev for every vertex; dist[Source] = 0.
//  3. Build the half-edge list once.
//  4. Up to V-1 passes: relax every half-edge; stop early on a pass with no update.
//  5. Verification pass: any remaining strict improvement ⇒ ErrNegativeCycle.
func Run(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, Stats, error) {
	// 1) Build and validate Options
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, Stats{}, ErrEmptySource
	}
	if g == nil {
		return nil, nil, Stats{}, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, Stats{}, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 2) Initialization shared with Dijkstra
	vertices := g.Vertices()
	dist := make(map[string]float64, len(vertices))
	prev := make(map[string]string, len(vertices))
	for _, v := range vertices {
		dist[v] = math.Inf(1)
		prev[v] = ""
	}
	dist[cfg.Source] = 0

	// 3) Half-edge list, built once
	halfEdges := g.HalfEdges()

	// 4) Relaxation passes
	var stats Stats
	for i := 0; i < len(vertices)-1; i++ {
		stats.Passes++
		changed := false
		for _, h := range halfEdges {
			if improves(dist, h) {
				dist[h.To] = dist[h.From] + h.Weight
				prev[h.To] = h.From
				stats.Relaxed++
				changed = true
			}
		}
		if !changed {
			stats.FixedPoint = true
			break
		}
	}

	// 5) Negative cycle verification
	for _, h := range halfEdges {
		if improves(dist, h) {
			return nil, nil, stats, fmt.Errorf("%w: %s→%s weight=%g still relaxes", ErrNegativeCycle, h.From, h.To, h.Weight)
		}
	}

	return dist, prev, stats, nil
}

// improves reports whether h strictly shortens the path to h.To.
// Unreached tails never relax anything.
func improves(dist map[string]float64, h core.HalfEdge) bool {
	du := dist[h.From]
	if math.IsInf(du, 1) {
		return false
	}

	return du+h.Weight < dist[h.To]
}
