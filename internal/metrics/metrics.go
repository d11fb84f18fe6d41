// Package metrics defines Prometheus metrics for jumpbot.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jumpbot_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jumpbot_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jumpbot_queries_total",
			Help: "Total routing queries by kind",
		},
		[]string{"kind"},
	)

	ResolveWarningsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jumpbot_resolve_warnings_total",
			Help: "Total name resolution warnings by kind",
		},
		[]string{"kind"},
	)

	SystemCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "jumpbot_systems_total",
			Help: "Total solar system count",
		},
	)

	GateCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "jumpbot_gates_total",
			Help: "Total stargate connection count",
		},
	)

	GraphBuildSeconds = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "jumpbot_graph_build_seconds",
			Help: "Time spent building or loading each routing graph variant",
		},
		[]string{"variant"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal,
		QueriesTotal, ResolveWarningsTotal,
		SystemCount, GateCount, GraphBuildSeconds,
	)
}
