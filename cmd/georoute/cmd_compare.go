package main

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/georoute/bfs"
	"github.com/katalvlaran/georoute/route"
)

// agreementTolerance absorbs float summation differences between engines.
const agreementTolerance = 1e-9

var errDisagreement = errors.New("compare: engines disagree")

// pairReport is the outcome of one ordered pair under every engine.
type pairReport struct {
	from, to  string
	reachable bool           // endpoints share a connected component
	results   []route.Result // indexed like route.Algorithms
}

// agree reports whether every engine found the same route, and whether that
// matches plain reachability.
func (p pairReport) agree() bool {
	base := p.results[0]
	if base.Found() != p.reachable {
		return false
	}
	for _, res := range p.results[1:] {
		if base.Found() != res.Found() || !slices.Equal(base.Path, res.Path) {
			return false
		}
		if base.Found() && math.Abs(base.Distance-res.Distance) > agreementTolerance {
			return false
		}
	}

	return true
}

func newCompareCmd(a *app) *cobra.Command {
	var (
		metricsOut  string
		parallelism int
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every engine over every ordered node pair and report disagreements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("parallelism") {
				parallelism = a.cfg.Parallelism
			}

			reg := prometheus.NewRegistry()
			m, err := route.NewMetrics(reg)
			if err != nil {
				return err
			}
			r, err := a.router(route.WithMetrics(m))
			if err != nil {
				return err
			}

			comp, err := bfs.ComponentIndex(a.g)
			if err != nil {
				return err
			}
			pairs, queries := comparePairs(a.g.Vertices(), comp)
			results, err := r.ShortestPaths(cmd.Context(), queries, parallelism)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			n := len(route.Algorithms)
			disagreements, failures := 0, 0
			for i := range pairs {
				pairs[i].results = results[i*n : (i+1)*n]
				for _, res := range pairs[i].results {
					if res.Err != nil {
						failures++
					}
				}
				if pairs[i].agree() {
					continue
				}
				disagreements++
				fmt.Fprintf(out, "DISAGREE %s -> %s\n", pairs[i].from, pairs[i].to)
				for _, res := range pairs[i].results {
					fmt.Fprintf(out, "  %-12s %.6f km  %s\n", res.Algorithm, res.Distance, strings.Join(res.Path, " -> "))
				}
			}
			fmt.Fprintf(out, "compared %d pairs with %d engines: %d disagreements, %d failures\n",
				len(pairs), n, disagreements, failures)

			if metricsOut != "" {
				if err := prometheus.WriteToTextfile(metricsOut, reg); err != nil {
					return fmt.Errorf("compare: write metrics: %w", err)
				}
				a.log.WithField("path", metricsOut).Info("metrics written")
			}

			a.log.WithFields(logrus.Fields{
				"pairs":         len(pairs),
				"disagreements": disagreements,
				"failures":      failures,
			}).Debug("compare finished")
			if disagreements > 0 || failures > 0 {
				return fmt.Errorf("%w: %d disagreements, %d failures", errDisagreement, disagreements, failures)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&metricsOut, "metrics-out", "", "write Prometheus text exposition to this file")
	cmd.Flags().IntVarP(&parallelism, "parallelism", "p", 0, "concurrent queries (default from config, else CPU count)")

	return cmd
}

// comparePairs lists every ordered pair of distinct nodes and the queries
// that run each pair through every engine, grouped by pair.
func comparePairs(ids []string, comp map[string]int) ([]pairReport, []route.Query) {
	pairs := make([]pairReport, 0, len(ids)*(len(ids)-1))
	queries := make([]route.Query, 0, cap(pairs)*len(route.Algorithms))
	for _, from := range ids {
		for _, to := range ids {
			if from == to {
				continue
			}
			pairs = append(pairs, pairReport{from: from, to: to, reachable: comp[from] == comp[to]})
			for _, algo := range route.Algorithms {
				queries = append(queries, route.Query{Source: from, Destination: to, Algorithm: algo})
			}
		}
	}

	return pairs, queries
}
