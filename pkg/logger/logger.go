package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Config represents the logger config, loaded from the yaml config file.
type Config struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"` // "text" or "json"
	Filename string `yaml:"filename"`
}

var global atomic.Pointer[slog.Logger]

func init() {
	global.Store(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

// InitGlobalLogger replaces the process-wide logger based on cfg.
func InitGlobalLogger(cfg *Config) {
	var out io.Writer = os.Stderr
	if cfg.Filename != "" {
		file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			out = io.MultiWriter(os.Stderr, file)
		}
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	global.Store(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Debug(msg string, args ...any) {
	global.Load().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	global.Load().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	global.Load().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	global.Load().Error(msg, args...)
}
