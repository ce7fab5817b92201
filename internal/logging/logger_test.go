package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"raycaster/internal/config"
)

func TestNew(t *testing.T) {
	for _, enc := range []string{"console", "json"} {
		logger, err := New(config.LoggingConfig{Level: "debug", Encoding: enc})
		require.NoError(t, err, enc)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel), enc)
	}

	logger, err := New(config.LoggingConfig{Level: "warn", Encoding: "json"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "chatty", Encoding: "json"})
	assert.Error(t, err)
	assert.Panics(t, func() { Must(config.LoggingConfig{Level: "chatty", Encoding: "json"}) })
}
