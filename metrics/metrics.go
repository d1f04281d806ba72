// Package metrics exposes FetchSERP client calls as Prometheus metrics.
package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/s0up4200/fetchserp/fetchserp"
)

// Metrics records request counts and latencies per endpoint.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	TimeoutsTotal   *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. A nil reg leaves
// them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fetchserp_requests_total",
				Help: "Total number of FetchSERP API requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fetchserp_request_duration_seconds",
				Help:    "FetchSERP API request duration in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"path"},
		),
		TimeoutsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fetchserp_request_timeouts_total",
				Help: "Total number of FetchSERP API requests abandoned after the client timeout",
			},
			[]string{"path"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.TimeoutsTotal)
	}

	return m
}

// ObserveRequest implements fetchserp.Recorder.
func (m *Metrics) ObserveRequest(info fetchserp.RequestInfo) {
	m.RequestsTotal.WithLabelValues(info.Method, info.Path, statusLabel(info)).Inc()
	m.RequestDuration.WithLabelValues(info.Path).Observe(info.Duration.Seconds())

	if errors.Is(info.Err, fetchserp.ErrTimeout) {
		m.TimeoutsTotal.WithLabelValues(info.Path).Inc()
	}
}

// statusLabel is the HTTP status, "error" when no response arrived.
func statusLabel(info fetchserp.RequestInfo) string {
	if info.StatusCode == 0 {
		return "error"
	}
	return strconv.Itoa(info.StatusCode)
}

var _ fetchserp.Recorder = (*Metrics)(nil)
