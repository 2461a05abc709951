package tracing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestNewProviderDisabledReturnsNeverSampling(t *testing.T) {
	provider, err := NewProvider(nil, Config{Enabled: false}, nil)
	require.NoError(t, err)
	require.NotNil(t, provider)
}

func TestNewProviderEnabledBuildsResource(t *testing.T) {
	provider, err := NewProvider(nil, Config{
		Enabled:          true,
		ServiceName:      "tripveda-test",
		ServiceVersion:   "0.0.1",
		Environment:      "test",
		ExporterEndpoint: "localhost:4317",
		ExporterProtocol: "grpc",
		SamplingRatio:    0.5,
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, provider)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = provider.Shutdown(ctx)
}

func TestNewExporterRejectsUnknownProtocol(t *testing.T) {
	_, err := newExporter("ftp", "localhost:4317")
	require.Error(t, err)
}

func TestSafeAttributesStripsPayloadKeys(t *testing.T) {
	filtered := SafeAttributes(
		attribute.String("http.method", "POST"),
		attribute.String("coupon_code", "WELCOME500"),
		attribute.String("email", "asha@example.com"),
	)
	require.Len(t, filtered, 1)
	require.Equal(t, attribute.Key("http.method"), filtered[0].Key)
}

func TestSafeErrorKeepsClassOnly(t *testing.T) {
	err := SafeError(errors.New("item_not_found: 404"))
	require.EqualError(t, err, "item_not_found")
}
