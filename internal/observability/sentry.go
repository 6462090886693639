package observability

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

type SentryOptions struct {
	DSN              string
	Environment      string
	Release          string
	TracesSampleRate float64
}

// InitSentry configures the global sentry client. It reports false when no DSN
// is set; meters and spans are then no-ops.
func InitSentry(opts SentryOptions) (bool, error) {
	if opts.DSN == "" {
		return false, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              opts.DSN,
		Environment:      opts.Environment,
		Release:          opts.Release,
		EnableTracing:    opts.TracesSampleRate > 0,
		TracesSampleRate: opts.TracesSampleRate,
		EnableLogs:       true,
	})
	if err != nil {
		return false, fmt.Errorf("failed to initialize sentry: %w", err)
	}
	return true, nil
}

// Flush waits for buffered sentry events, up to timeout.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}
