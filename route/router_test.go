package route_test

import (
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/georoute/bellmanford"
	"github.com/katalvlaran/georoute/core"
	"github.com/katalvlaran/georoute/dijkstra"
	"github.com/katalvlaran/georoute/route"
)

type edge struct {
	a, b string
	w    float64
}

func build(t testing.TB, vertices []string, edges []edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.a, e.b, e.w)
		require.NoError(t, err)
	}
	g.Freeze()

	return g
}

// abcd is A–B(5), B–C(3), A–C(10) plus the isolated vertex D.
func abcd(t testing.TB) *core.Graph {
	return build(t, []string{"A", "B", "C", "D"}, []edge{{"A", "B", 5}, {"B", "C", 3}, {"A", "C", 10}})
}

func newRouter(t *testing.T, g *core.Graph) (*route.Router, *logtest.Hook) {
	t.Helper()
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	r, err := route.NewRouter(g, route.WithLogger(log))
	require.NoError(t, err)

	return r, hook
}

func assertNoRoute(t *testing.T, res route.Result) {
	t.Helper()
	assert.Empty(t, res.Path)
	assert.True(t, math.IsInf(res.Distance, 1), "distance = %v", res.Distance)
	assert.False(t, res.Found())
}

func TestShortestPath_Triangle(t *testing.T) {
	r, _ := newRouter(t, abcd(t))
	for _, algo := range route.Algorithms {
		t.Run(algo.String(), func(t *testing.T) {
			res := r.ShortestPath("A", "C", algo)
			require.NoError(t, res.Err)
			assert.Equal(t, []string{"A", "B", "C"}, res.Path)
			assert.Equal(t, 8.0, res.Distance)
			assert.Equal(t, algo, res.Algorithm)
			assert.True(t, res.Found())
		})
	}
}

func TestShortestPath_Reverse(t *testing.T) {
	r, _ := newRouter(t, abcd(t))
	for _, algo := range route.Algorithms {
		res := r.ShortestPath("C", "A", algo)
		require.NoError(t, res.Err)
		assert.Equal(t, []string{"C", "B", "A"}, res.Path)
		assert.Equal(t, 8.0, res.Distance)
	}
}

func TestShortestPath_Disconnected(t *testing.T) {
	r, hook := newRouter(t, abcd(t))
	for _, algo := range route.Algorithms {
		res := r.ShortestPath("A", "D", algo)
		assert.NoError(t, res.Err, "unreachable is not an error")
		assertNoRoute(t, res)
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
	}
}

func TestShortestPath_SameNodeIsNoRoute(t *testing.T) {
	r, _ := newRouter(t, abcd(t))
	for _, algo := range route.Algorithms {
		res := r.ShortestPath("B", "B", algo)
		assert.NoError(t, res.Err)
		assertNoRoute(t, res)
	}
}

func TestShortestPath_NegativeCycle(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, []edge{{"A", "B", -1}, {"B", "C", -1}, {"C", "A", -1}})
	r, hook := newRouter(t, g)

	res := r.ShortestPath("A", "C", route.BellmanFord)
	assertNoRoute(t, res)
	require.ErrorIs(t, res.Err, bellmanford.ErrNegativeCycle)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, route.BellmanFord, entry.Data["algorithm"])
	assert.Equal(t, "A", entry.Data["source"])
	assert.Equal(t, "C", entry.Data["destination"])

	// Dijkstra refuses negative weights outright.
	res = r.ShortestPath("A", "C", route.Dijkstra)
	assertNoRoute(t, res)
	assert.ErrorIs(t, res.Err, dijkstra.ErrNegativeWeight)
}

func TestShortestPath_UnknownNodesAndAlgorithm(t *testing.T) {
	r, hook := newRouter(t, abcd(t))

	res := r.ShortestPath("X", "A", route.Dijkstra)
	assertNoRoute(t, res)
	assert.ErrorIs(t, res.Err, route.ErrUnknownNode)

	res = r.ShortestPath("A", "X", route.BellmanFord)
	assertNoRoute(t, res)
	assert.ErrorIs(t, res.Err, route.ErrUnknownNode)

	res = r.ShortestPath("A", "C", route.Algorithm("floyd"))
	assertNoRoute(t, res)
	assert.ErrorIs(t, res.Err, route.ErrUnknownAlgorithm)

	assert.Len(t, hook.AllEntries(), 3)
}

func TestShortestPath_Idempotent(t *testing.T) {
	r, _ := newRouter(t, abcd(t))
	for _, algo := range route.Algorithms {
		first := r.ShortestPath("A", "C", algo)
		second := r.ShortestPath("A", "C", algo)
		assert.Equal(t, first.Path, second.Path)
		assert.Equal(t, first.Distance, second.Distance)
		assert.Equal(t, first.Err, second.Err)
	}
}

func TestShortestPath_PackageLevel(t *testing.T) {
	res := route.ShortestPath(abcd(t), "A", "C", route.Dijkstra)
	require.NoError(t, res.Err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)

	res = route.ShortestPath(nil, "A", "C", route.Dijkstra)
	assertNoRoute(t, res)
	assert.ErrorIs(t, res.Err, route.ErrNilGraph)
}

func TestNewRouter_NilGraph(t *testing.T) {
	_, err := route.NewRouter(nil)
	assert.ErrorIs(t, err, route.ErrNilGraph)
}

func TestParseAlgorithm(t *testing.T) {
	tests := map[string]route.Algorithm{
		"dijkstra":     route.Dijkstra,
		"Dijkstra":     route.Dijkstra,
		"bellman-ford": route.BellmanFord,
		"bellmanford":  route.BellmanFord,
		"BELLMAN_FORD": route.BellmanFord,
	}
	for in, want := range tests {
		got, err := route.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := route.ParseAlgorithm("a-star")
	assert.ErrorIs(t, err, route.ErrUnknownAlgorithm)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := route.NewMetrics(reg)
	require.NoError(t, err)

	g := build(t, []string{"A", "B", "C"}, []edge{{"A", "B", 1}})
	log, _ := logtest.NewNullLogger()
	r, err := route.NewRouter(g, route.WithLogger(log), route.WithMetrics(m))
	require.NoError(t, err)

	r.ShortestPath("A", "B", route.Dijkstra)
	r.ShortestPath("A", "B", route.BellmanFord)
	r.ShortestPath("A", "C", route.BellmanFord)
	r.ShortestPath("A", "X", route.BellmanFord)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues("dijkstra", route.OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues("bellman-ford", route.OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues("bellman-ford", route.OutcomeNoRoute)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues("bellman-ford", route.OutcomeError)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.QueryDuration))

	// Registering twice on the same registry fails.
	_, err = route.NewMetrics(reg)
	assert.Error(t, err)
}
