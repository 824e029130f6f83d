// Package diagnostics forwards recovered failures to Sentry so they are visible
// without being surfaced to the user.
package diagnostics

import (
	"context"
	"errors"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Belphemur/ShowBrowser/v2/internal/apperrors"
	"github.com/Belphemur/ShowBrowser/v2/internal/config"
)

const flushTimeout = 2 * time.Second

// Init configures the global Sentry client. With an empty DSN reporting stays
// disabled and the returned flush function is a no-op.
func Init(dsn, environment string) (flush func(), err error) {
	if dsn == "" {
		return func() {}, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	}); err != nil {
		return func() {}, err
	}

	logger := config.GetLogger()
	logger.Info().Str("environment", environment).Msg("Sentry error reporting enabled")

	return func() {
		sentry.Flush(flushTimeout)
	}, nil
}

// ReportFetchFailure sends a catalog fetch failure to Sentry, tagged with the
// operation and URL when err carries them.
func ReportFetchFailure(ctx context.Context, err error) {
	if err == nil {
		return
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		// The global hub is shared by every request goroutine; scopes are per clone.
		hub = sentry.CurrentHub().Clone()
	}

	hub.WithScope(func(scope *sentry.Scope) {
		var fetchErr *apperrors.ErrRemoteFetch
		if errors.As(err, &fetchErr) {
			scope.SetTag("operation", fetchErr.Operation)
			scope.SetExtra("url", fetchErr.URL)
		}
		hub.CaptureException(err)
	})
}
