package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/cj/internal/config"
)

func TestNewLoggerCreatesFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.LogConfig{
		Dir:        dir,
		Level:      "debug",
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
	}
	_, err := NewLogger(cfg, nil)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "cj.log"))
	assert.NoError(t, err)
}

func TestNewLoggerRejectsBadRotation(t *testing.T) {
	_, err := NewLogger(config.LogConfig{Dir: t.TempDir()}, nil)
	assert.Error(t, err)
}

func TestNewLoggerConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(config.LogConfig{Level: "info"}, &buf)
	require.NoError(t, err)

	logger.Info("lookup", "char", "我")
	logger.Debug("hidden")
	assert.Contains(t, buf.String(), "lookup")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel(" DEBUG "))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelWarn, parseLevel(""))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
}
