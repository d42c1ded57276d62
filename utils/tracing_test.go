package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

func TestInitTracing(t *testing.T) {
	previousProvider := otel.GetTracerProvider()
	previousPropagator := otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(previousProvider)
		otel.SetTextMapPropagator(previousPropagator)
	})

	provider, err := InitTracing(context.Background(), TracingConfig{Endpoint: "localhost:4318", SampleRatio: 1})
	require.NoError(t, err)

	assert.Same(t, provider, otel.GetTracerProvider())
	assert.IsType(t, propagation.TraceContext{}, otel.GetTextMapPropagator())
	assert.NoError(t, provider.Shutdown(context.Background()))
}
