// Package logger configures the slog default logger from the environment.
package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvVarLogLevel selects the minimum level: debug, info, warn or error.
	EnvVarLogLevel = "LOG_LEVEL"

	// EnvVarLogFormat selects the output format: json (default) or text.
	EnvVarLogFormat = "LOG_FORMAT"
)

// Options describes a structured logger.
type Options struct {
	Module  string    // Added to every record as "module"
	Version string    // Added to every record as "version"
	Level   string    // Minimum level name, see ParseLogLevel
	Format  string    // "json" (default) or "text"
	Output  io.Writer // Destination, os.Stderr when nil
}

// OptionsFromEnv returns logger options for the given module and version,
// with the level and format taken from the environment.
//
// Parameters:
//   - module: The name of the module or application using the logger
//   - version: The version of the module or application (e.g., "v1.0.0")
//
// Returns:
//   - Options with Level read from LOG_LEVEL and Format from LOG_FORMAT
func OptionsFromEnv(module, version string) Options {
	return Options{
		Module:  module,
		Version: version,
		Level:   os.Getenv(EnvVarLogLevel),
		Format:  os.Getenv(EnvVarLogFormat),
	}
}

// New creates a structured logger that writes JSON, or text when
// o.Format is "text", to o.Output.
// Source file and line are included only when the level is debug.
//
// Parameters:
//   - o: Logger options; see OptionsFromEnv for the environment driven form
//
// Returns:
//   - *slog.Logger with "module" and "version" attributes on every record
func New(o Options) *slog.Logger {
	lev := ParseLogLevel(o.Level)

	out := o.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     lev,
		AddSource: lev <= slog.LevelDebug,
	}

	var h slog.Handler
	if strings.EqualFold(strings.TrimSpace(o.Format), "text") {
		h = slog.NewTextHandler(out, opts)
	} else {
		h = slog.NewJSONHandler(out, opts)
	}

	return slog.New(h).With("module", o.Module, "version", o.Version)
}

// NewLogLogger returns a standard library *log.Logger that writes through a
// slog text handler on stderr. It is meant for APIs that only accept
// *log.Logger, such as http.Server.ErrorLog.
//
// Parameters:
//   - level: The level every record written through the logger is emitted at
//   - withSource: Whether to include source file and line in each record
//
// Returns:
//   - *log.Logger backed by slog
func NewLogLogger(level slog.Level, withSource bool) *log.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: withSource,
	})

	return slog.NewLogLogger(handler, level)
}

// SetDefaultLogger builds a logger from the environment and installs it as
// the slog default, so package level slog calls pick up the module and
// version attributes.
//
// Parameters:
//   - module: The name of the module or application using the logger
//   - version: The version of the module or application (e.g., "v1.0.0")
//
// Example:
//
//	logger.SetDefaultLogger("navmenu", version)
//	slog.Info("starting") // includes module and version
func SetDefaultLogger(module, version string) {
	slog.SetDefault(New(OptionsFromEnv(module, version)))
}

// ParseLogLevel converts a level name to a slog.Level.
// Matching is case insensitive and ignores surrounding whitespace.
//
// Parameters:
//   - level: One of "debug", "info", "warn" (or "warning"), "error"
//
// Returns:
//   - The matching slog.Level, slog.LevelInfo when the name is unrecognized
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
