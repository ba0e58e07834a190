package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/shvbsle/skirmish/internal/config"
	"github.com/shvbsle/skirmish/internal/log"
)

// parseLogLevel parses a log level string and returns the corresponding slog.Level.
// Supports: debug, info, warn, error (case-insensitive).
// Returns slog.LevelInfo if the level string is invalid.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// getLogPath determines the log file path to use.
// Priority: customPath (from config) > XDG default path
// If customPath is invalid, falls back to XDG path.
func getLogPath(customPath string) (string, error) {
	if customPath != "" {
		customPath = config.ExpandHome(customPath)

		if err := os.MkdirAll(filepath.Dir(customPath), 0755); err == nil {
			testFile, err := os.OpenFile(customPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
			if err == nil {
				_ = testFile.Close()
				return customPath, nil
			}
		}

		fmt.Fprintf(os.Stderr, "Warning: could not use custom log path %s, falling back to XDG default\n", customPath)
	}

	logPath, err := xdg.StateFile("skirmish/skirmish.log")
	if err != nil {
		return "", fmt.Errorf("could not get log path: %w", err)
	}

	return logPath, nil
}

// setupLogging points the default slog logger at the log file. The returned
// file must be closed by the caller.
func setupLogging(logLevel slog.Level, customLogPath string) (*os.File, error) {
	logPath, err := getLogPath(customLogPath)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}

	log.SetDefault(log.NewLogger(&log.LoggerConfiguration{
		LogLevel: logLevel,
		Writer:   f,
	}))

	slog.Info("skirmish logging initialized", "log_path", logPath, "log_level", logLevel.String())
	return f, nil
}
