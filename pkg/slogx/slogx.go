// Package slogx builds the service-wide structured logger: one root
// log/slog logger stamped with the service identity, plus the request
// middleware and context helpers in the sibling files.
package slogx

import (
	"log/slog"
	"os"
	"strings"
)

// Config selects handler format and verbosity for the root logger.
type Config struct {
	Service string
	Version string
	Env     string // "dev" enables source locations
	Level   string // "debug", "info", "warn", "error"
	Format  string // "json" (default) or "text"
}

// New builds the root logger, attaches the service identity fields and
// installs it as the process-wide slog default.
func New(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     levelFrom(cfg.Level),
		AddSource: cfg.Env == "dev",
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler).With(
		"service", cfg.Service,
		"version", cfg.Version,
		"env", cfg.Env,
	)

	slog.SetDefault(logger)
	return logger
}

// levelFrom maps a config string to a slog.Level, defaulting to info.
func levelFrom(lvl string) slog.Level {
	switch strings.ToLower(lvl) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
