// Package logging provides structured logging setup for the hbnb CLI.
package logging

import (
	"log/slog"
	"os"
)

// Setup initializes the default slog logger. Diagnostics go to stderr so
// they never mix with rendered output on stdout. Debug mode uses
// human-readable text at debug level; otherwise warnings and up as JSON.
func Setup(debug bool) {
	var handler slog.Handler
	if debug {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})
	}
	slog.SetDefault(slog.New(handler))
}
