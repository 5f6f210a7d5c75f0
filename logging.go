package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-ladder/internal/config"
)

// setupLogger configures the process-wide logger. When a log file is configured,
// entries are appended to it as well as written to stderr.
func setupLogger(cfg config.LogConfig) (func(), error) {
	switch cfg.Format {
	case "text":
		log.SetFormatter(log.TextFormatter)
	default:
		log.SetFormatter(log.JSONFormatter)
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	log.SetLevel(level)

	if cfg.File == "" {
		return func() {}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
	}
	log.SetOutput(io.MultiWriter(os.Stderr, f))
	log.Info("Logging to file", "path", cfg.File)

	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
