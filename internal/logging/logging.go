package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// NewHandler builds a text slog handler at the given level. Results go to
// stdout as JSON, so logs always write to the provided writer (stderr by
// default).
func NewHandler(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	reportTimestamp := false
	lvl := log.InfoLevel
	switch strings.ToLower(logLevel) {
	case "debug":
		reportTimestamp = true
		lvl = log.DebugLevel
	case "info":
		lvl = log.InfoLevel
	case "warn", "warning":
		lvl = log.WarnLevel
	case "error":
		lvl = log.ErrorLevel
	}

	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: reportTimestamp,
		Level:           lvl,
	})
}

// SetupLogger installs the default logger based on the provided log level.
func SetupLogger(logLevel string) *slog.Logger {
	logger := slog.New(NewHandler(logLevel, nil))
	slog.SetDefault(logger)
	return logger
}
