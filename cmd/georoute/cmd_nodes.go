package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/georoute/bfs"
)

func newNodesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "nodes",
		Short: "List the nodes of the network with their coordinates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			comp, err := bfs.ComponentIndex(a.g)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tLON\tLAT\tDEGREE\tCOMPONENT")
			for _, node := range a.net.Nodes {
				deg, err := a.g.Degree(node.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%.5f\t%.5f\t%d\t%d\n", node.ID, node.Lon, node.Lat, deg, comp[node.ID])
			}

			return w.Flush()
		},
	}
}
