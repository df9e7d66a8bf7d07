package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expect    slog.Level
		expectErr bool
	}{
		{"debug", "debug", slog.LevelDebug, false},
		{"default-info", "", slog.LevelInfo, false},
		{"warn", "WARNING", slog.LevelWarn, false},
		{"error", "error", slog.LevelError, false},
		{"invalid", "verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := levelFromString(tt.input)
			if tt.expectErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid log level")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expect, level)
		})
	}
}

func TestProdWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := newWithWriter(Config{Level: "info", Environment: "prod"}, &buf)
	require.NoError(t, err)

	l.Info("summary built", "patient_name", "John")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "summary built", rec["msg"])
	assert.Equal(t, "John", rec["patient_name"])
}

func TestDebugFilteredAtInfo(t *testing.T) {
	var buf bytes.Buffer
	l, err := newWithWriter(Config{Level: "info"}, &buf)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("shown")
	assert.False(t, strings.Contains(buf.String(), "hidden"))
	assert.True(t, strings.Contains(buf.String(), "shown"))
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caregiver.log")
	var buf bytes.Buffer
	l, err := newWithWriter(Config{Level: "info", File: path}, &buf)
	require.NoError(t, err)

	l.Info("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Contains(t, buf.String(), "written to file")
}
