package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	priceQuotes      metric.Int64Counter
	bookingsCreated  metric.Int64Counter
	bookingsConfirm  metric.Int64Counter
	couponsApplied   metric.Int64Counter
	couponsSkipped   metric.Int64Counter
	rateLimitAllowed metric.Int64Counter
	rateLimitDenied  metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	if log != nil {
		log.Info("metrics initialized",
			zap.String("endpoint", cfg.ExporterEndpoint),
			zap.String("protocol", cfg.ExporterProtocol),
		)
	}

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "tripveda"
	}
	meter := provider.Meter(name)

	priceQuotes, err := meter.Int64Counter("tripveda_price_quotes_total")
	if err != nil {
		return nil, err
	}
	bookingsCreated, err := meter.Int64Counter("tripveda_bookings_created_total")
	if err != nil {
		return nil, err
	}
	bookingsConfirm, err := meter.Int64Counter("tripveda_bookings_confirmed_total")
	if err != nil {
		return nil, err
	}
	couponsApplied, err := meter.Int64Counter("tripveda_coupons_applied_total")
	if err != nil {
		return nil, err
	}
	couponsSkipped, err := meter.Int64Counter("tripveda_coupons_skipped_total")
	if err != nil {
		return nil, err
	}
	rateLimitAllowed, err := meter.Int64Counter("tripveda_rate_limit_allowed_total")
	if err != nil {
		return nil, err
	}
	rateLimitDenied, err := meter.Int64Counter("tripveda_rate_limit_denied_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		priceQuotes:      priceQuotes,
		bookingsCreated:  bookingsCreated,
		bookingsConfirm:  bookingsConfirm,
		couponsApplied:   couponsApplied,
		couponsSkipped:   couponsSkipped,
		rateLimitAllowed: rateLimitAllowed,
		rateLimitDenied:  rateLimitDenied,
	}, nil
}

// RecordPriceQuote increments price quote counts per booking type.
func (m *Metrics) RecordPriceQuote(ctx context.Context, bookingType string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(attribute.String("booking_type", strings.TrimSpace(bookingType)))
	m.priceQuotes.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordBookingCreated increments created booking counts.
func (m *Metrics) RecordBookingCreated(ctx context.Context, bookingType string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(attribute.String("booking_type", strings.TrimSpace(bookingType)))
	m.bookingsCreated.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordBookingConfirmed increments confirmed booking counts.
func (m *Metrics) RecordBookingConfirmed(ctx context.Context, bookingType string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(attribute.String("booking_type", strings.TrimSpace(bookingType)))
	m.bookingsConfirm.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordCouponApplied increments applied coupon counts.
func (m *Metrics) RecordCouponApplied(ctx context.Context, bookingType string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(attribute.String("booking_type", strings.TrimSpace(bookingType)))
	m.couponsApplied.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordCouponSkipped increments skipped coupon counts with a reason.
func (m *Metrics) RecordCouponSkipped(ctx context.Context, reason string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(attribute.String("reason", strings.TrimSpace(reason)))
	m.couponsSkipped.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordRateLimitAllowed increments rate limit allow counts.
func (m *Metrics) RecordRateLimitAllowed(ctx context.Context, userID, endpoint string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(
		attribute.String("user_id", strings.TrimSpace(userID)),
		attribute.String("endpoint", strings.TrimSpace(endpoint)),
	)
	m.rateLimitAllowed.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordRateLimitDenied increments rate limit deny counts.
func (m *Metrics) RecordRateLimitDenied(ctx context.Context, userID, endpoint, reason string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(
		attribute.String("user_id", strings.TrimSpace(userID)),
		attribute.String("endpoint", strings.TrimSpace(endpoint)),
		attribute.String("reason", strings.TrimSpace(reason)),
	)
	m.rateLimitDenied.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	protocol = strings.ToLower(strings.TrimSpace(protocol))
	switch protocol {
	case "http", "http/protobuf":
		opts := []otlpmetrichttp.Option{}
		if endpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		}
		return otlpmetrichttp.New(context.Background(), opts...)
	case "grpc", "grpc/protobuf", "":
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithInsecure()}
		if endpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(endpoint))
		}
		return otlpmetricgrpc.New(context.Background(), opts...)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol %q", protocol)
	}
}

var allowedLabelKeys = map[attribute.Key]struct{}{
	"user_id":      {},
	"endpoint":     {},
	"status_code":  {},
	"booking_type": {},
	"reason":       {},
	"route":        {},
	"method":       {},
}

// FilterAttributes strips disallowed labels to keep metrics low-cardinality.
func FilterAttributes(attrs ...attribute.KeyValue) []attribute.KeyValue {
	filtered := make([]attribute.KeyValue, 0, len(attrs))
	for _, attr := range attrs {
		if _, ok := allowedLabelKeys[attr.Key]; !ok {
			continue
		}
		filtered = append(filtered, attr)
	}
	return filtered
}
