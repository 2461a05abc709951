package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// HTTPMetrics exposes server-side HTTP instruments.
type HTTPMetrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// NewHTTPMetrics configures HTTP request instruments.
func NewHTTPMetrics(cfg Config, provider metric.MeterProvider) (*HTTPMetrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "tripveda"
	}
	meter := provider.Meter(name)

	requests, err := meter.Int64Counter("tripveda_http_requests_total")
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram(
		"tripveda_http_request_duration_ms",
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &HTTPMetrics{
		requests: requests,
		duration: duration,
	}, nil
}

// Record records a completed request.
func (m *HTTPMetrics) Record(c *gin.Context, elapsed time.Duration) {
	if m == nil {
		return
	}

	route := strings.TrimSpace(c.FullPath())
	if route == "" {
		route = "unknown"
	}
	attrs := FilterAttributes(
		attribute.String("method", c.Request.Method),
		attribute.String("route", route),
		attribute.String("status_code", strconv.Itoa(c.Writer.Status())),
	)

	ctx := c.Request.Context()
	m.requests.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.duration.Record(ctx, float64(elapsed.Milliseconds()), metric.WithAttributes(attrs...))
}

// GinMiddleware records request counts and latency per route.
func GinMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.Record(c, time.Since(start))
	}
}
