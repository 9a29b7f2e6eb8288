package observability

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tabboard.log")

	logger, closer, err := NewLogger(path, slog.LevelDebug)
	require.NoError(t, err)
	logger.Debug("message appended", slog.String("thread", "board"))
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "message appended")
	assert.Contains(t, string(data), "thread=board")
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabboard.log")

	logger, closer, err := NewLogger(path, slog.LevelWarn)
	require.NoError(t, err)
	logger.Info("hidden")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewLoggerWithoutFileDiscards(t *testing.T) {
	logger, closer, err := NewLogger("", slog.LevelDebug)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.NoError(t, closer.Close())
}
