package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForServiceAddsAttribute(t *testing.T) {
	var structured, human bytes.Buffer
	SetOutput(&structured, &human, slog.LevelInfo)

	logger := ForService("notification")
	require.NotNil(t, logger)
	logger.Info("provider registered", "channel", "mock")

	var record map[string]any
	require.NoError(t, json.Unmarshal(structured.Bytes(), &record))
	assert.Equal(t, "notification", record["service"])
	assert.Equal(t, "mock", record["channel"])
	assert.Equal(t, "provider registered", record["msg"])
}

func TestCustomLevelNames(t *testing.T) {
	var structured, human bytes.Buffer
	SetOutput(&structured, &human, LevelTrace)

	Trace("low level detail")

	var record map[string]any
	require.NoError(t, json.Unmarshal(structured.Bytes(), &record))
	assert.Equal(t, "TRACE", record["level"])
}

func TestNewFileLogger(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "provider.log")
	logger, closeFn, err := NewFileLogger(path, "mock-provider", slog.LevelDebug, FileRotation{})
	require.NoError(t, err)
	require.NotNil(t, logger)
	t.Cleanup(func() { _ = closeFn() })

	logger.Debug("delivery simulated", "notification_id", "n-1")
	require.NoError(t, closeFn())

	assert.FileExists(t, path)
}

func TestDefaultFileRotation(t *testing.T) {
	t.Parallel()

	rotation := DefaultFileRotation()
	assert.Equal(t, 100, rotation.MaxSizeMB)
	assert.Equal(t, 3, rotation.MaxBackups)
	assert.Equal(t, 28, rotation.MaxAgeDays)
}
