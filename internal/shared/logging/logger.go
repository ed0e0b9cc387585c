package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config selects level, encoding and the service name stamped on every record.
type Config struct {
	Level     string // debug, info, warn, error, trace
	Format    string // json or text
	Service   string
	AddSource bool
}

var levels = map[string]slog.Level{
	"trace":   slog.LevelDebug - 2,
	"debug":   slog.LevelDebug,
	"dbg":     slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
	"err":     slog.LevelError,
}

// ParseLevel maps a textual level to slog; unknown values fall back to info.
func ParseLevel(raw string) slog.Level {
	if level, ok := levels[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return level
	}
	return slog.LevelInfo
}

func New(w io.Writer, cfg Config) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level), AddSource: cfg.AddSource}
	var handler slog.Handler
	if strings.EqualFold(strings.TrimSpace(cfg.Format), "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(handler)
	if service := strings.TrimSpace(cfg.Service); service != "" {
		logger = logger.With(slog.String("service", service))
	}
	return logger
}

// With returns the default logger tagged with component.
func With(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}
