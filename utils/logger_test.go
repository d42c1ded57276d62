package utils

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	SetupLogger("debug", false)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	SetupLogger("warn", true)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	SetupLogger("nonsense", false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	SetupLogger("", false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
