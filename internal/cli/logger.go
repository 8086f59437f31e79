// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Katlego-Ram2/MorseCodeTranslator/internal/config"
)

// initLogger builds the logger described by cfg. When the output is a file
// the returned closer must be closed.
func initLogger(cfg config.LoggingConfig, stdout, stderr io.Writer) (*slog.Logger, io.Closer) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var (
		output io.Writer
		closer io.Closer
	)
	switch cfg.Output {
	case "stderr", "":
		output = stderr
	case "stdout":
		output = stdout
	default:
		file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open log file %s: %v, falling back to stderr\n", cfg.Output, err)
			output = stderr
		} else {
			output, closer = file, file
		}
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler), closer
}
