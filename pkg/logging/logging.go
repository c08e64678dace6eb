// Package logging sets up the structured file logger. Nothing is written to
// the terminal: the TUI owns the screen while it runs.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"demochat/pkg/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelTrace is more verbose than debug; it logs full message bodies.
const LevelTrace = slog.Level(-8)

const (
	logDirName     = ".demochat"
	defaultLogFile = "demochat.log"

	maxLogSizeMB  = 5
	maxLogBackups = 5
	maxLogAgeDays = 14
)

var levelNames = map[string]slog.Level{
	"trace":   LevelTrace,
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// Init installs a rotating file logger as the slog default and returns it
// with the writer to close on exit. If the log directory cannot be created
// the logger discards everything and the error is returned alongside it.
func Init(cfg config.Config) (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{
		Level:       parseLogLevel(cfg.LogLevel),
		ReplaceAttr: replaceLevelNames,
	}

	path := LogPath(cfg)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		logger := slog.New(newHandler(cfg.LogFormat, io.Discard, opts))
		slog.SetDefault(logger)
		return logger, io.NopCloser(nil), err
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
		Compress:   true,
	}

	logger := slog.New(newHandler(cfg.LogFormat, rotator, opts))
	slog.SetDefault(logger)
	return logger, rotator, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// LogPath is the configured log file, or the default under the home dir.
func LogPath(cfg config.Config) string {
	if p := strings.TrimSpace(cfg.LogFile); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return filepath.Join(logDirName, "logs", defaultLogFile)
	}
	return filepath.Join(home, logDirName, "logs", defaultLogFile)
}

func parseLogLevel(level string) slog.Level {
	if l, ok := levelNames[strings.ToLower(strings.TrimSpace(level))]; ok {
		return l
	}
	return slog.LevelInfo
}

// replaceLevelNames prints LevelTrace as TRACE instead of DEBUG-4.
func replaceLevelNames(groups []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey || len(groups) > 0 {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok && level == LevelTrace {
		a.Value = slog.StringValue("TRACE")
	}
	return a
}

func newHandler(format string, out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if strings.EqualFold(strings.TrimSpace(format), "text") {
		return slog.NewTextHandler(out, opts)
	}
	return slog.NewJSONHandler(out, opts)
}
