package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	sentryslog "github.com/getsentry/sentry-go/slog"
	"github.com/lmittmann/tint"
)

type Options struct {
	Level  slog.Level
	Format string
	// Sentry forwards warnings as logs and errors as events. Only set it
	// after the sentry client is initialised.
	Sentry bool
}

// New builds the process logger: tint for text, the JSON handler for json.
func New(w io.Writer, opts Options) *slog.Logger {
	var console slog.Handler
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "json":
		console = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level})
	default:
		console = tint.NewHandler(w, &tint.Options{Level: opts.Level})
	}

	if !opts.Sentry {
		return slog.New(console)
	}
	return slog.New(MultiHandler(console, newSentryHandler(opts.Level)))
}

func newSentryHandler(level slog.Level) slog.Handler {
	logLevels := []slog.Level{slog.LevelWarn}
	if level <= slog.LevelInfo {
		logLevels = append(logLevels, slog.LevelInfo)
	}
	return sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevels,
	}.NewSentryHandler(context.Background())
}
