package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger("info", "json", &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("message handled", zap.Int64("chat_id", 42))
	require.NoError(t, log.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "message handled", entry["msg"])
	assert.EqualValues(t, 42, entry["chat_id"])
}

func TestNewLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger("warn", "console", &buf)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("reading input")
	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "reading input")
	assert.NotContains(t, out, "hidden")
}

func TestNewLogger_Invalid(t *testing.T) {
	_, err := newLogger("loud", "json", &bytes.Buffer{})
	assert.Error(t, err)

	_, err = newLogger("info", "xml", &bytes.Buffer{})
	assert.Error(t, err)
}
