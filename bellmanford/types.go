package bellmanford

import "errors"

// Sentinel errors returned by the Bellman-Ford implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("bellmanford: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to BellmanFord.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist.
	ErrVertexNotFound = errors.New("bellmanford: source vertex not found in graph")

	// ErrNegativeCycle indicates that a negative-weight cycle is reachable from
	// the source, so shortest distances are undefined. No maps are returned.
	ErrNegativeCycle = errors.New("bellmanford: graph contains a negative-weight cycle")
)

// Options configures the behavior of the Bellman-Ford algorithm.
type Options struct {
	Source string // The ID of the source vertex
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// Source sets the starting vertex ID. Must be supplied.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Stats reports how a run ended; it is returned alongside the maps by Run.
type Stats struct {
	Passes     int  // relaxation passes executed (≤ V-1)
	Relaxed    int  // successful relaxations across all passes
	FixedPoint bool // a full pass made no update before the V-1 limit
}
