package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "devr", configBaseName)
	assert.Equal(t, "devr.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "check.exclude", excludeConfigKey)
	assert.Equal(t, "security.fail_fast", failFastConfigKey)
	assert.Equal(t, "DEVR", envPrefix)
	assert.Equal(t, ".devr.log", defaultLogFilename)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo), "value %q", tt.value)
	}
}

func TestGitTimeout(t *testing.T) {
	assert.Equal(t, defaultGitTimeout, gitTimeout())

	t.Setenv("DEVR_GIT_TIMEOUT", "3s")
	assert.Equal(t, 3*time.Second, gitTimeout())

	t.Setenv("DEVR_GIT_TIMEOUT", "-1s")
	assert.Equal(t, defaultGitTimeout, gitTimeout())
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	originalWriter := verboseWriter

	t.Cleanup(func() {
		slog.SetDefault(original)
		verboseWriter = originalWriter
	})

	t.Run("writes to the log file", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "devr.log")

		configureLogger(logPath, false)
		slog.Info("hello from test", "key", "value")
		slog.Debug("hidden debug")

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello from test")
		assert.NotContains(t, string(data), "hidden debug")
	})

	t.Run("verbose mirrors records", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "devr.log")
		console := &bytes.Buffer{}
		verboseWriter = console

		configureLogger(logPath, true)
		slog.With("stage", "lint").Debug("debug line")

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "debug line")
		assert.Contains(t, console.String(), "debug line")
		assert.Contains(t, console.String(), "lint")
	})

	t.Run("empty path falls back to config", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "configured.log")
		viper.Set(logFilenameKey, logPath)
		t.Cleanup(func() { viper.Set(logFilenameKey, defaultLogFilename) })

		configureLogger("", false)
		slog.Warn("configured path")

		assert.FileExists(t, logPath)
	})
}

func TestFanoutHandler_Enabled(t *testing.T) {
	warnOnly := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})
	errorOnly := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError})

	h := newFanoutHandler(warnOnly, errorOnly)

	assert.False(t, h.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, h.Enabled(t.Context(), slog.LevelWarn))
	assert.NotNil(t, h.WithGroup("g"))
}
