package log

import (
	"io"
	"log/slog"
	"os"
)

type LoggerConfiguration struct {
	LogLevel slog.Level
	Writer   io.Writer
}

// NewLogger builds a JSON slog logger for the given sink. Gameplay never
// logs to stdout once a frontend owns the terminal, so callers normally pass
// a file here.
func NewLogger(config *LoggerConfiguration) *slog.Logger {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}

	return slog.New(slog.NewJSONHandler(config.Writer, &slog.HandlerOptions{
		Level:     config.LogLevel,
		AddSource: true,
	}))
}

// SetDefault sets the default logger
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}

// G returns the global logger instance
func G() *slog.Logger {
	return slog.Default()
}

// Sim returns a logger scoped to the game session.
func Sim() *slog.Logger {
	return slog.With("component", "sim")
}

// Frontend returns a logger scoped to a named frontend.
func Frontend(name string) *slog.Logger {
	return slog.With("component", "frontend", "frontend", name)
}

// Spectate returns a logger scoped to the spectator feed.
func Spectate() *slog.Logger {
	return slog.With("component", "spectate")
}

// TUI returns a logger instance scoped with the TUI component
func TUI() *slog.Logger {
	return slog.With("component", "TUI")
}

// Discard returns a logger that drops everything; handy in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
