package route

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/georoute/bellmanford"
	"github.com/katalvlaran/georoute/core"
	"github.com/katalvlaran/georoute/dijkstra"
)

// Router answers shortest-path queries against one graph.
//
// The graph should be frozen before it is handed to a Router; every query
// allocates its own distance and predecessor maps, so a Router is safe for
// concurrent use.
type Router struct {
	g       *core.Graph
	log     *logrus.Logger
	metrics *Metrics
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithLogger sets the logger used to report engine failures and query traces.
// Defaults to logrus.StandardLogger().
func WithLogger(log *logrus.Logger) RouterOption {
	return func(r *Router) {
		if log != nil {
			r.log = log
		}
	}
}

// WithMetrics records every query into m.
func WithMetrics(m *Metrics) RouterOption {
	return func(r *Router) { r.metrics = m }
}

// NewRouter creates a Router over g.
func NewRouter(g *core.Graph, opts ...RouterOption) (*Router, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	r := &Router{g: g, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Graph returns the graph the Router queries.
func (r *Router) Graph() *core.Graph { return r.g }

// ShortestPath runs algo from src and returns the path to dst with its length.
//
// Contract:
//   - Engine failure (negative cycle, unknown node, unknown algorithm) is
//     logged and returned as the canonical no-route result with Err set.
//   - A reconstructed path of fewer than two vertices is no route, including
//     src == dst: a zero-length self-route is not a meaningful query.
//   - Otherwise Path is src..dst and Distance is dist[dst].
func (r *Router) ShortestPath(src, dst string, algo Algorithm) Result {
	logger := r.log.WithFields(logrus.Fields{
		"algorithm":   algo,
		"source":      src,
		"destination": dst,
	})

	res := r.run(src, dst, algo)
	r.metrics.observe(res)

	switch {
	case res.Err != nil:
		logger.WithError(res.Err).Error("route: shortest path query failed")
	case !res.Found():
		logger.WithField("elapsed", res.Elapsed).Debug("route: no route")
	default:
		logger.WithFields(logrus.Fields{
			"hops":     len(res.Path) - 1,
			"distance": res.Distance,
			"elapsed":  res.Elapsed,
		}).Debug("route: shortest path found")
	}

	return res
}

// run executes the engine and normalizes its output into a Result.
func (r *Router) run(src, dst string, algo Algorithm) Result {
	if !r.g.HasVertex(src) {
		return noRoute(algo, fmt.Errorf("%w: source %q", ErrUnknownNode, src))
	}
	if !r.g.HasVertex(dst) {
		return noRoute(algo, fmt.Errorf("%w: destination %q", ErrUnknownNode, dst))
	}

	var (
		dist map[string]float64
		prev map[string]string
		err  error
	)
	start := time.Now()
	switch algo {
	case Dijkstra:
		dist, prev, err = dijkstra.Dijkstra(r.g, dijkstra.Source(src), dijkstra.WithTarget(dst))
	case BellmanFord:
		dist, prev, err = bellmanford.BellmanFord(r.g, bellmanford.Source(src))
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(algo))
	}
	elapsed := time.Since(start)

	if err != nil {
		res := noRoute(algo, err)
		res.Elapsed = elapsed

		return res
	}

	path := Reconstruct(prev, dst)
	if len(path) < 2 {
		res := noRoute(algo, nil)
		res.Elapsed = elapsed

		return res
	}

	return Result{
		Path:      path,
		Distance:  dist[dst],
		Algorithm: algo,
		Elapsed:   elapsed,
	}
}

// ShortestPath is a convenience wrapper that queries g with a default Router.
func ShortestPath(g *core.Graph, src, dst string, algo Algorithm) Result {
	r, err := NewRouter(g)
	if err != nil {
		logrus.WithError(err).Error("route: shortest path query failed")

		return noRoute(algo, err)
	}

	return r.ShortestPath(src, dst, algo)
}
