package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "catalog", cfg.MongoDB.Database)
	assert.Equal(t, 10*time.Second, cfg.MongoDB.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "public/images/products", cfg.Upload.ImageDir)
	assert.Equal(t, []string{"http://localhost:3000", "https://localhost:3443"}, cfg.CORSWhitelist)
	assert.Empty(t, cfg.CollectorHost)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "8080")
	t.Setenv("MONGODB_TIMEOUT", "3s")
	t.Setenv("CORS_WHITELIST", " https://shop.example , ,https://admin.example")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.MongoDB.Timeout)
	assert.Equal(t, []string{"https://shop.example", "https://admin.example"}, cfg.CORSWhitelist)
}

func TestParse_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Parse()
	require.Error(t, err)
}

func TestLoadMongoDB_IgnoresServerSettings(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("MONGODB_DATABASE", "catalog_admin")

	cfg, err := LoadMongoDB()
	require.NoError(t, err)
	assert.Equal(t, "catalog_admin", cfg.Database)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestParse_Tracing(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("COLLECTOR_HOST", "otel-collector")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "otel-collector:4318", cfg.CollectorEndpoint())
	assert.Equal(t, 1.0, cfg.TraceSampleRatio)

	t.Setenv("COLLECTOR_PORT", "14318")
	t.Setenv("TRACE_SAMPLE_RATIO", "7")
	cfg, err = Parse()
	require.NoError(t, err)
	assert.Equal(t, "otel-collector:14318", cfg.CollectorEndpoint())
	assert.Equal(t, 1.0, cfg.TraceSampleRatio)

	t.Setenv("TRACE_SAMPLE_RATIO", "0.25")
	cfg, err = Parse()
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.TraceSampleRatio)
}
