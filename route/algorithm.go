package route

import (
	"fmt"
	"strings"
)

// Algorithm selects the shortest-path engine used by a query.
type Algorithm string

const (
	// Dijkstra is the heap-backed label-setting engine (non-negative weights only).
	Dijkstra Algorithm = "dijkstra"

	// BellmanFord is the edge-relaxation engine with negative-cycle detection.
	BellmanFord Algorithm = "bellman-ford"
)

// Algorithms lists every supported engine in a stable order.
var Algorithms = []Algorithm{Dijkstra, BellmanFord}

// ParseAlgorithm maps a user-supplied name to an Algorithm.
// Matching is case-insensitive and accepts "bellmanford" and "bellman_ford"
// as aliases of BellmanFord.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dijkstra":
		return Dijkstra, nil
	case "bellman-ford", "bellmanford", "bellman_ford":
		return BellmanFord, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// String implements fmt.Stringer.
func (a Algorithm) String() string { return string(a) }
