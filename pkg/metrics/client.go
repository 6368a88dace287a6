package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ClientMetrics records outbound calls made to the GreenLoop backend.
type ClientMetrics struct {
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
}

// NewClientMetrics registers the client metrics on the provided registerer.
func NewClientMetrics(reg prometheus.Registerer) *ClientMetrics {
	if reg == nil {
		return &ClientMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "greenloop_client_request_duration_seconds",
		Help:    "Duration of requests to the GreenLoop backend in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "method", "status"})
	errors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "greenloop_client_request_errors_total",
		Help: "Failed requests to the GreenLoop backend by error code.",
	}, []string{"endpoint", "code"})
	reg.MustRegister(duration, errors)
	return &ClientMetrics{
		duration: duration,
		errors:   errors,
	}
}

// ObserveRequest records one completed round trip. status is 0 when no
// response was received.
func (c *ClientMetrics) ObserveRequest(endpoint, method string, status int, elapsed time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.WithLabelValues(normalizeLabel(endpoint), method, statusLabel(status)).Observe(elapsed.Seconds())
}

// IncError increments the error counter for the endpoint and error code.
func (c *ClientMetrics) IncError(endpoint, code string) {
	if c == nil || c.errors == nil {
		return
	}
	c.errors.WithLabelValues(normalizeLabel(endpoint), normalizeLabel(code)).Inc()
}

func statusLabel(status int) string {
	if status <= 0 {
		return "none"
	}
	return strconv.Itoa(status)
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
