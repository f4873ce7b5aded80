package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	t.Setenv(EnvAddr, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, cfg.Seed)
}

func TestLoadFile(t *testing.T) {
	t.Setenv(EnvAddr, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")

	path := writeFile(t, `
addr: 127.0.0.1:9000
read_header_timeout: 2s
shutdown_timeout: 10s
log:
  level: debug
  format: json
seed:
  - title: Learn Go
    description: Understand the basics of net/http.
  - title: Build API
    description: Create a RESTful API for a ToDo list.
    completed: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 2*time.Second, cfg.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)
	require.Len(t, cfg.Seed, 2)
	assert.Equal(t, SeedTodo{Title: "Build API", Description: "Create a RESTful API for a ToDo list.", Completed: true}, cfg.Seed[1])
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "addr: :9000\n")
	t.Setenv(EnvConfigFile, path)
	t.Setenv(EnvAddr, ":7000")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(EnvAddr, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")

	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "addr: [\n"},
		{"bad duration", "shutdown_timeout: soon\n"},
		{"negative timeout", "read_header_timeout: -1s\n"},
		{"unknown level", "log:\n  level: loud\n"},
		{"unknown format", "log:\n  format: xml\n"},
		{"blank seed", "seed:\n  - title: x\n    description: ' '\n"},
		{"zero body limit", "max_body_bytes: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			assert.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	LogConfig{Level: "info", Format: "json"}.NewLogger(&buf).Info("hello", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	logger := LogConfig{Level: "warn", Format: "text"}.NewLogger(&buf)
	logger.Info("dropped")
	logger.Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "msg=kept")
}

func TestGetenv(t *testing.T) {
	t.Setenv("TODO_TEST_SET", "value")
	t.Setenv("TODO_TEST_EMPTY", "")

	assert.Equal(t, "value", getenv("TODO_TEST_SET", "default"))
	assert.Equal(t, "fallback", getenv("TODO_TEST_EMPTY", "fallback"))
}
