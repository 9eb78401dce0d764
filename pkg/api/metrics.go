package api

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Request outcomes
const (
	outcomeOK        = "ok"
	outcomeError     = "api_error"
	outcomeDecode    = "decode_error"
	outcomeTransport = "transport_error"
)

// requestMetrics records requests to the service.
// A nil *requestMetrics records nothing.
type requestMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// newRequestMetrics registers the client metrics on the provided registerer.
// Returns nil if reg is nil.
// Metrics that are already registered, e.g. by another client, are reused.
func newRequestMetrics(reg prometheus.Registerer) (*requestMetrics, error) {
	if reg == nil {
		return nil, nil
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notion_api_requests_total",
		Help: "Requests to the Notion API by method, endpoint and outcome.",
	}, []string{"method", "endpoint", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "notion_api_request_duration_seconds",
		Help:    "Duration of requests to the Notion API in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint"})

	err := reg.Register(requests)
	if err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		requests = are.ExistingCollector.(*prometheus.CounterVec)
	}
	err = reg.Register(duration)
	if err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		duration = are.ExistingCollector.(*prometheus.HistogramVec)
	}

	return &requestMetrics{
		requests: requests,
		duration: duration,
	}, nil
}

func (m *requestMetrics) observe(method, endpoint string, err error, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, endpoint, outcome(err)).Inc()
	m.duration.WithLabelValues(method, endpoint).Observe(d.Seconds())
}

func outcome(err error) string {
	var (
		apiErr       *Error
		decodeErr    *DecodeError
		transportErr *TransportError
	)
	switch {
	case err == nil:
		return outcomeOK
	case errors.As(err, &apiErr):
		return outcomeError
	case errors.As(err, &decodeErr):
		return outcomeDecode
	case errors.As(err, &transportErr):
		return outcomeTransport
	}
	return outcomeTransport
}
