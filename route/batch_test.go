package route_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/georoute/route"
)

func TestShortestPaths_MatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	g := randomGraph(t, rng, 40, 90)
	r, _ := newRouter(t, g)
	vs := g.Vertices()

	queries := make([]route.Query, 0, 200)
	for i := 0; i < 200; i++ {
		queries = append(queries, route.Query{
			Source:      vs[rng.Intn(len(vs))],
			Destination: vs[rng.Intn(len(vs))],
			Algorithm:   route.Algorithms[i%2],
		})
	}

	results, err := r.ShortestPaths(context.Background(), queries, 8)
	require.NoError(t, err)
	require.Len(t, results, len(queries))
	for i, q := range queries {
		want := r.ShortestPath(q.Source, q.Destination, q.Algorithm)
		assert.Equal(t, want.Path, results[i].Path, "query %d", i)
		assert.Equal(t, want.Distance, results[i].Distance, "query %d", i)
		assert.Equal(t, q.Algorithm, results[i].Algorithm)
	}
}

func TestShortestPaths_PerQueryErrorsDoNotAbort(t *testing.T) {
	r, _ := newRouter(t, abcd(t))
	results, err := r.ShortestPaths(context.Background(), []route.Query{
		{Source: "A", Destination: "C", Algorithm: route.Dijkstra},
		{Source: "A", Destination: "Z", Algorithm: route.Dijkstra},
		{Source: "C", Destination: "A", Algorithm: route.BellmanFord},
	}, 2)
	require.NoError(t, err)
	assert.True(t, results[0].Found())
	assert.ErrorIs(t, results[1].Err, route.ErrUnknownNode)
	assert.True(t, results[2].Found())
}

func TestShortestPaths_BadParallelism(t *testing.T) {
	r, _ := newRouter(t, abcd(t))
	_, err := r.ShortestPaths(context.Background(), nil, 0)
	assert.ErrorIs(t, err, route.ErrBadParallelism)
}

func TestShortestPaths_CancelledContext(t *testing.T) {
	r, _ := newRouter(t, abcd(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.ShortestPaths(ctx, []route.Query{{Source: "A", Destination: "C", Algorithm: route.Dijkstra}}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
