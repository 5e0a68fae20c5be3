package core

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetricsRecorder fulfills MetricsRecorder against a Prometheus
// registry, for deployments that scrape or push process metrics.
type PrometheusMetricsRecorder struct {
	results   *prometheus.CounterVec
	durations *prometheus.CounterVec
}

// NewPrometheusMetricsRecorder constructs a recorder and registers its
// collectors with reg. A nil reg falls back to the default registerer.
func NewPrometheusMetricsRecorder(reg prometheus.Registerer) (*PrometheusMetricsRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &PrometheusMetricsRecorder{
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "memberdir_operation_results_total",
			Help: "Pipeline operation outcomes by operation and status.",
		}, []string{"operation", "status"}),
		durations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "memberdir_operation_duration_ms_total",
			Help: "Cumulative pipeline operation duration in milliseconds.",
		}, []string{"operation"}),
	}
	if err := reg.Register(r.results); err != nil {
		return nil, err
	}
	if err := reg.Register(r.durations); err != nil {
		return nil, err
	}
	return r, nil
}

// Observe records one operation outcome.
func (r *PrometheusMetricsRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	status := "error"
	if success {
		status = "success"
	}
	r.results.WithLabelValues(operation, status).Inc()
	r.durations.WithLabelValues(operation).Add(float64(duration) / float64(time.Millisecond))
}
