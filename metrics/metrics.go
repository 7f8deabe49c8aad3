package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry prometheus.Gatherer
	metrics  *Metrics
	once     sync.Once
)

// Metrics holds the Prometheus collectors for HTTP traffic.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// Get returns the process-wide metrics instance.
func Get() *Metrics {
	once.Do(func() {
		reg := prometheus.NewRegistry()
		registry = reg
		metrics = New(prometheus.WrapRegistererWith(prometheus.Labels{"service": "todoapi"}, reg))
	})
	return metrics
}

// New creates the metrics collection on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RequestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// RecordHTTPRequest records one finished request.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// HTTPHandler returns the exposition handler for the registry behind Get.
func HTTPHandler() http.Handler {
	Get()
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
