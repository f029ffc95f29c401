// Command georoute answers shortest-path queries over a geographic road
// network with either Dijkstra or Bellman-Ford.
//
// Usage:
//
//	georoute route "Nodo Lima 1" "Nodo Ica 1" --algorithm bellman-ford
//	georoute compare --parallelism 8 --metrics-out georoute.prom
//	georoute nodes
//
// Without --network the embedded Peru reference network is used.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
