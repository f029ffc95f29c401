package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/georoute/route"
)

func newRouteCmd(a *app) *cobra.Command {
	var algorithm string
	cmd := &cobra.Command{
		Use:   "route <from> <to>",
		Short: "Find the shortest path between two nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.cfg.Algorithm
			if cmd.Flags().Changed("algorithm") {
				name = algorithm
			}
			algo, err := route.ParseAlgorithm(name)
			if err != nil {
				return err
			}
			r, err := a.router()
			if err != nil {
				return err
			}

			res := r.ShortestPath(args[0], args[1], algo)
			if res.Err != nil {
				return res.Err
			}
			printRoute(cmd, args[0], args[1], res)

			return nil
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(route.Dijkstra), "engine: dijkstra|bellman-ford")

	return cmd
}

func printRoute(cmd *cobra.Command, from, to string, res route.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Algorithm: %s\n", res.Algorithm)
	if !res.Found() {
		fmt.Fprintf(out, "no route from %s to %s\n", from, to)
	} else {
		fmt.Fprintf(out, "Path: %s\n", strings.Join(res.Path, " -> "))
		fmt.Fprintf(out, "Distance: %.2f km\n", res.Distance)
	}
	fmt.Fprintf(out, "Execution time: %s\n", res.Elapsed)
}
