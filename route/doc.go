// Package route is the query facade over the shortest-path engines.
//
// It selects an engine (Dijkstra or Bellman-Ford), runs it against a frozen
// core.Graph, rebuilds the path from the predecessor map and normalizes the
// outcome into a Result:
//
//	caller → Router.ShortestPath → engine (reads core.Graph) → Reconstruct → Result
//
// Result contract:
//
//   - Found route:  Path = [src … dst], Distance = dist[dst].
//   - No route:     Path empty, Distance = +Inf, Err = nil. Covers an
//     unreachable destination and src == dst.
//   - Failure:      Path empty, Distance = +Inf, Err set (negative cycle,
//     unknown node, unknown algorithm). Failures are logged through logrus and
//     never propagate as panics.
//
// BuildGraph turns a node list, a link list and a coordinate table into a
// frozen graph weighted by haversine kilometres (package geo).
//
// ShortestPaths runs many queries concurrently over the same graph with
// errgroup; Metrics exports Prometheus counters and latency histograms.
package route
