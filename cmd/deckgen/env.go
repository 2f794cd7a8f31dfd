package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-deckgen/internal/assets"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, logging, and template loading.
type Environment struct {
	Now       func() time.Time
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *log.Logger
	Templates assets.Loader
}

// DefaultEnv returns the production environment with embedded templates.
func DefaultEnv() *Environment {
	return &Environment{
		Now:       time.Now,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Logger:    newLogger(os.Stderr, log.InfoLevel),
		Templates: assets.NewEmbeddedLoader(),
	}
}

// newLogger creates a logger with timestamp formatting writing to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
