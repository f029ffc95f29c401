// Package core defines the Graph store shared by every shortest-path engine:
// an undirected, weighted multigraph whose vertices and adjacency lists keep
// their insertion order.
//
// This file declares Edge, HalfEdge, Graph, GraphOption, the sentinel errors
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrInvalidReference    - AddEdge references a vertex that was never added.
//	ErrBadWeight           - weight is NaN or infinite.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrFrozen              - mutation attempted after Freeze.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates a query referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrInvalidReference indicates AddEdge was called with an endpoint
	// that has not been added with AddVertex. The graph is left unchanged.
	ErrInvalidReference = errors.New("core: edge references unknown vertex")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be a finite number")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrFrozen indicates a mutation of a graph that has been frozen for querying.
	ErrFrozen = errors.New("core: graph is frozen")
)

// Edge is one undirected connection between two vertices.
//
// An Edge inserted as (From, To) is traversable in both directions with the
// same Weight; it is materialized as two HalfEdge entries.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the first endpoint as given to AddEdge.
	From string

	// To is the second endpoint as given to AddEdge.
	To string

	// Weight is the traversal cost, identical in both directions.
	Weight float64
}

// HalfEdge is one traversal direction of an undirected Edge.
type HalfEdge struct {
	EdgeID string  // ID of the owning Edge
	From   string  // tail vertex
	To     string  // head vertex
	Weight float64 // copied from the owning Edge
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithoutMultiEdges rejects a second edge between the same pair of vertices.
// By default parallel edges are kept and engines pick the cheapest one
// through relaxation.
func WithoutMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = false }
}

// WithoutLoops rejects self-loops (edges from a vertex to itself).
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = false }
}

// Graph is the in-memory store for vertices and undirected weighted edges.
//
// Vertices are kept in insertion order (order/index); adjacency[i] holds the
// half-edges leaving order[i] in the order their edges were added.
// mu guards every field; writers take the exclusive lock, queries the shared one.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	frozen     bool // reject all further mutation

	// Storage
	nextEdgeID uint64         // edge ID generator, guarded by mu
	order      []string       // vertex IDs in insertion order
	index      map[string]int // vertex ID → position in order
	adjacency  [][]HalfEdge   // adjacency[index[v]] = half-edges leaving v
	edges      []*Edge        // undirected edges in insertion order
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph allows parallel edges and self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		allowMulti: true,
		allowLoops: true,
		index:      make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
