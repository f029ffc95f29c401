package route

import (
	"fmt"

	"github.com/katalvlaran/georoute/core"
	"github.com/katalvlaran/georoute/geo"
)

// Link is an undirected connection between two named nodes.
type Link struct {
	From string
	To   string
}

// CoordinateLookup returns the (longitude, latitude) of a node in decimal
// degrees, and false when the node has no known position.
type CoordinateLookup func(id string) (lon, lat float64, ok bool)

// BuildGraph assembles a frozen core.Graph from a node list, a list of links
// and a coordinate table. Each link is weighted with the haversine distance
// in kilometres between its endpoints.
//
// Steps:
//  1. Add every node in the given order (duplicates are ignored).
//  2. For each link, look up both endpoints, compute geo.Distance and AddEdge.
//  3. Freeze the graph.
//
// Errors:
//   - core.ErrEmptyVertexID for an empty node ID.
//   - ErrMissingCoordinate when lookup is nil or has no position for a link endpoint.
//   - core.ErrInvalidReference when a link names a node not in nodes.
func BuildGraph(nodes []string, links []Link, lookup CoordinateLookup) (*core.Graph, error) {
	if lookup == nil && len(links) > 0 {
		return nil, fmt.Errorf("%w: lookup is nil", ErrMissingCoordinate)
	}
	g := core.NewGraph()
	for _, id := range nodes {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("route: add node %q: %w", id, err)
		}
	}

	for _, l := range links {
		lon1, lat1, ok := lookup(l.From)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingCoordinate, l.From)
		}
		lon2, lat2, ok := lookup(l.To)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingCoordinate, l.To)
		}
		w := geo.Distance(lat1, lon1, lat2, lon2)
		if _, err := g.AddEdge(l.From, l.To, w); err != nil {
			return nil, fmt.Errorf("route: link %s–%s: %w", l.From, l.To, err)
		}
	}
	g.Freeze()

	return g, nil
}
