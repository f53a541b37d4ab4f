package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rpgo/acos-calculator/internal/domain"
)

// Metrics holds the server's collectors on a private registry
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	results  *prometheus.CounterVec
	acos     prometheus.Histogram
}

// NewMetrics registers the HTTP collectors plus the Go and process collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "acos",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "acos",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "acos",
			Name:      "calculations_total",
			Help:      "Calculate requests by eligibility of the inputs.",
		}, []string{"eligible"}),
		acos: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "acos",
			Name:      "calculated_percent",
			Help:      "Distribution of computed ACoS values in percent.",
			Buckets:   []float64{5, 10, 15, 20, 25, 30, 40, 50, 75, 100},
		}),
	}
	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.results,
		m.acos,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Instrument records count and latency for one route
func (m *Metrics) Instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// ObserveCalculation counts one calculate request and records the ACoS when eligible
func (m *Metrics) ObserveCalculation(calc domain.Calculation) {
	m.results.WithLabelValues(strconv.FormatBool(calc.Eligible)).Inc()
	if calc.Eligible {
		m.acos.Observe(calc.ACoS.Float64())
	}
}
