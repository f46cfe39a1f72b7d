package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServerMetrics struct {
	Requests        *prometheus.CounterVec
	LatencyMS       *prometheus.HistogramVec
	RemoteFailures  *prometheus.CounterVec
	UploadsRejected prometheus.Counter
}

func NewServerMetrics(reg prometheus.Registerer) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "storefront",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	remote := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "product_api_failures_total",
		Help:      "Failed calls to the remote product API.",
	}, []string{"operation"})
	uploads := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "image_uploads_failed_total",
		Help:      "Image uploads dropped from a product's image list.",
	})

	reg.MustRegister(requests, latency, remote, uploads)
	return &ServerMetrics{Requests: requests, LatencyMS: latency, RemoteFailures: remote, UploadsRejected: uploads}
}

// RemoteFailed and UploadFailed accept a nil receiver so services can run without metrics.
func (m *ServerMetrics) RemoteFailed(operation string) {
	if m == nil {
		return
	}
	m.RemoteFailures.WithLabelValues(operation).Inc()
}

func (m *ServerMetrics) UploadFailed() {
	if m == nil {
		return
	}
	m.UploadsRejected.Inc()
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
