package dlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoggerNone(t *testing.T) {
	logger, err := GetLogger(LevelNone)
	require.NoError(t, err)
	require.NotNil(t, logger)
	// Nop logger should swallow everything without panicking
	logger.Info("ignored")
}

func TestGetLoggerLevels(t *testing.T) {
	for _, level := range []string{LevelInfo, LevelDebug} {
		logger, err := GetLogger(level)
		require.NoError(t, err, "level %s", level)
		require.NotNil(t, logger)
	}
}

func TestGetLoggerInvalid(t *testing.T) {
	_, err := GetLogger("verbose")
	assert.Error(t, err)
}

func TestMustGetLoggerPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustGetLogger("bogus")
	})
}
