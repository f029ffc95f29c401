package route

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Query outcome label values.
const (
	OutcomeFound   = "found"
	OutcomeNoRoute = "no_route"
	OutcomeError   = "error"
)

// Metrics holds the Prometheus collectors for route queries.
type Metrics struct {
	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves the collectors unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "georoute_queries_total",
				Help: "Total shortest-path queries by algorithm and outcome",
			},
			[]string{"algorithm", "outcome"},
		),
		QueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "georoute_query_duration_seconds",
				Help:    "Engine run time per shortest-path query in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"algorithm"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.QueriesTotal, m.QueryDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// observe records res; a nil receiver is a no-op.
func (m *Metrics) observe(res Result) {
	if m == nil {
		return
	}
	outcome := OutcomeFound
	switch {
	case res.Err != nil:
		outcome = OutcomeError
	case !res.Found():
		outcome = OutcomeNoRoute
	}
	algo := string(res.Algorithm)
	m.QueriesTotal.WithLabelValues(algo, outcome).Inc()
	m.QueryDuration.WithLabelValues(algo).Observe(res.Elapsed.Seconds())
}
