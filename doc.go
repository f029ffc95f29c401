// Package georoute computes single-source shortest paths over geographic
// road networks.
//
// Nodes are named points with (longitude, latitude) coordinates; links are
// undirected and weighted by their great-circle (haversine) length in
// kilometres. Two interchangeable engines answer queries: Dijkstra for the
// usual non-negative case and Bellman-Ford, which also detects negative
// cycles.
//
// Layout:
//
//	geo/           haversine distance and Coordinate
//	core/          thread-safe undirected multigraph store
//	dijkstra/      heap-based Dijkstra with optional early exit
//	bellmanford/   Bellman-Ford with negative-cycle detection
//	bfs/           hop-count search and connected components
//	route/         path reconstruction, BuildGraph and the Router facade
//	network/       YAML network documents and the embedded Peru network
//	cmd/georoute/  command-line interface (route, compare, nodes)
//
// Quick start:
//
//	n, _ := network.Peru()
//	g, _ := n.Graph()
//	res := route.ShortestPath(g, "Nodo Lima 1", "Nodo Ica 1", route.Dijkstra)
//	fmt.Println(res.Path, res.Distance)
package georoute
