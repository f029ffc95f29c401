package route

import (
	"errors"
	"math"
	"time"
)

// Sentinel errors reported by the route facade.
var (
	// ErrNilGraph indicates that a nil graph was handed to the facade.
	ErrNilGraph = errors.New("route: graph is nil")

	// ErrUnknownAlgorithm indicates an Algorithm value with no engine behind it.
	ErrUnknownAlgorithm = errors.New("route: unknown algorithm")

	// ErrUnknownNode indicates that the source or destination is not in the graph.
	ErrUnknownNode = errors.New("route: node not found in graph")

	// ErrMissingCoordinate indicates BuildGraph could not locate a node's coordinates.
	ErrMissingCoordinate = errors.New("route: missing coordinate for node")

	// ErrBadParallelism indicates a non-positive concurrency limit.
	ErrBadParallelism = errors.New("route: parallelism must be positive")
)

// Result is the outcome of one shortest-path query.
//
// A query that finds no route (unreachable destination, source equal to
// destination, or an engine failure) has an empty Path and Distance = +Inf.
// Err is set only when the engine failed; "no route" alone is not an error.
type Result struct {
	Path      []string      // source..destination inclusive, empty when no route
	Distance  float64       // kilometres for geographic graphs, +Inf when no route
	Algorithm Algorithm     // engine that produced the result
	Elapsed   time.Duration // wall time spent in the engine
	Err       error         // engine or validation failure, nil otherwise
}

// Found reports whether the result carries a route.
func (r Result) Found() bool { return len(r.Path) >= 2 }

// noRoute returns the canonical empty result for algo.
func noRoute(algo Algorithm, err error) Result {
	return Result{Distance: math.Inf(1), Algorithm: algo, Err: err}
}

// Query is one (source, destination, algorithm) request for ShortestPaths.
type Query struct {
	Source      string
	Destination string
	Algorithm   Algorithm
}
