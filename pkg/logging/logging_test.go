package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "warn", Format: "json", Writer: &buf})

	logger.Info("dropped")
	logger.Warn("kept", "path", "/")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "/", rec["path"])
}

func TestNewTint(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "info", Writer: &buf})
	logger.Info("server started", "addr", ":8080")
	assert.Contains(t, buf.String(), "server started")
	assert.Contains(t, buf.String(), ":8080")
}
