// Package metrics exposes Prometheus instruments for route queries.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "citypath"

// Query status label values.
const (
	StatusOK        = "ok"
	StatusNotFound  = "not_found"
	StatusError     = "error"
	StatusCancelled = "cancelled"
)

// Metrics holds every instrument recorded by a query run.
type Metrics struct {
	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	PathHops      *prometheus.HistogramVec
	GraphVertices prometheus.Gauge
	GraphEdges    prometheus.Gauge
}

// New creates the instruments and registers them on reg.
// It panics if they are already registered there, like promauto does.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		QueriesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queries_total",
				Help:      "Total number of path queries by algorithm and status",
			},
			[]string{"algorithm", "status"},
		),
		QueryDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "query_duration_seconds",
				Help:      "Traversal plus path building time in seconds",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"algorithm"},
		),
		PathHops: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "path_hops",
				Help:      "Number of edges on returned paths",
				Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
			},
			[]string{"algorithm"},
		),
		GraphVertices: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_vertices",
			Help:      "Number of cities in the loaded graph",
		}),
		GraphEdges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Number of undirected roads in the loaded graph",
		}),
	}
}

// ObserveGraph sets the graph size gauges.
func (m *Metrics) ObserveGraph(vertices, edges int) {
	if m == nil {
		return
	}
	m.GraphVertices.Set(float64(vertices))
	m.GraphEdges.Set(float64(edges))
}

// ObserveQuery records one finished query. hops is ignored unless status is StatusOK.
func (m *Metrics) ObserveQuery(algorithm, status string, seconds float64, hops int) {
	if m == nil {
		return
	}
	m.QueriesTotal.WithLabelValues(algorithm, status).Inc()
	m.QueryDuration.WithLabelValues(algorithm).Observe(seconds)
	if status == StatusOK {
		m.PathHops.WithLabelValues(algorithm).Observe(float64(hops))
	}
}
