// Package logging sets up the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/f3rmion/cj/internal/config"
)

const defaultLogFileName = "cj.log"

// NewLogger creates the logger and installs it as the slog default.
//
// console is where colored output goes; pass nil while the terminal UI owns the
// screen. With neither a console nor a log dir everything is discarded.
func NewLogger(cfg config.LogConfig, console io.Writer) (*slog.Logger, error) {
	level := parseLevel(cfg.Level)

	logDir := strings.TrimSpace(cfg.Dir)
	if logDir == "" {
		if console == nil {
			console = io.Discard
		}
		logger := newLogger(console, level, false)
		slog.SetDefault(logger)
		return logger, nil
	}

	if cfg.MaxSizeMB <= 0 || cfg.MaxBackups <= 0 || cfg.MaxAgeDays <= 0 {
		return nil, fmt.Errorf(
			"invalid log config: size=%d backups=%d age_days=%d",
			cfg.MaxSizeMB,
			cfg.MaxBackups,
			cfg.MaxAgeDays,
		)
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}

	logFile := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, defaultLogFileName),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	var writer io.Writer = logFile
	if console != nil {
		writer = io.MultiWriter(console, logFile)
	}
	logger := newLogger(writer, level, true)
	slog.SetDefault(logger)
	logger.Debug("file_logging_enabled", "path", logFile.Filename)
	return logger, nil
}

func newLogger(writer io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(writer, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
