// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lims"

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	batchesCreated  *prometheus.CounterVec
	peakYields      *prometheus.CounterVec
	batchRejects    prometheus.Counter
	uploads         *prometheus.CounterVec
	uploadBytes     *prometheus.CounterVec
	housekeeping    *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		batchesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_created_total",
			Help:      "Batches recorded, by enzyme.",
		}, []string{"enzyme_id"}),
		peakYields: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "peak_yield_batches_total",
			Help:      "Batches classified as peak yield on creation, by enzyme.",
		}, []string{"enzyme_id"}),
		batchRejects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_out_of_range_total",
			Help:      "Batch submissions rejected because outputs were outside 95-105%.",
		}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_total",
			Help:      "Files stored, by kind.",
		}, []string{"kind"}),
		uploadBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upload_bytes_total",
			Help:      "Bytes stored, by kind.",
		}, []string{"kind"}),
		housekeeping: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "housekeeping_runs_total",
			Help:      "Housekeeping runs by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.batchesCreated,
		m.peakYields,
		m.batchRejects,
		m.uploads,
		m.uploadBytes,
		m.housekeeping,
	)
	return m
}

// Registry exposes the collectors, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// The recorders below accept a nil receiver so services work without metrics.

func (m *Metrics) BatchCreated(enzymeID string, peak bool) {
	if m == nil {
		return
	}
	m.batchesCreated.WithLabelValues(enzymeID).Inc()
	if peak {
		m.peakYields.WithLabelValues(enzymeID).Inc()
	}
}

func (m *Metrics) BatchRejected() {
	if m == nil {
		return
	}
	m.batchRejects.Inc()
}

func (m *Metrics) Uploaded(kind string, size int64) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues(kind).Inc()
	m.uploadBytes.WithLabelValues(kind).Add(float64(size))
}

func (m *Metrics) HousekeepingRun(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.housekeeping.WithLabelValues(result).Inc()
}

// Middleware records request counts and latency. It labels by the matched
// ServeMux pattern, so it must wrap the mux directly.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(rw.status)).Inc()
		m.requestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
