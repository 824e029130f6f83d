// Package app assembles the show browser from configuration and runs it.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Belphemur/ShowBrowser/v2/internal/client"
	"github.com/Belphemur/ShowBrowser/v2/internal/config"
	"github.com/Belphemur/ShowBrowser/v2/internal/diagnostics"
	"github.com/Belphemur/ShowBrowser/v2/internal/metrics"
	"github.com/Belphemur/ShowBrowser/v2/internal/panel"
	"github.com/Belphemur/ShowBrowser/v2/internal/server"
	"github.com/Belphemur/ShowBrowser/v2/internal/session"
	"github.com/Belphemur/ShowBrowser/v2/internal/view"
)

const (
	shutdownTimeout = 10 * time.Second
	defaultTTL      = 24 * time.Hour

	// sessionMetricsGroup labels the session store metrics
	sessionMetricsGroup = "panels"
)

// App holds the wired components of a running show browser
type App struct {
	cfg    *config.Config
	client client.Client
	store  session.Store
	server *server.Server
	flush  func()
}

// New builds every component from cfg
func New(cfg *config.Config) (*App, error) {
	flush, err := diagnostics.Init(cfg.Sentry.DSN, cfg.Sentry.Environment)
	if err != nil {
		return nil, fmt.Errorf("init sentry: %w", err)
	}

	store, err := NewSessionStore(cfg)
	if err != nil {
		flush()
		return nil, err
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		_ = store.Close()
		flush()
		return nil, err
	}

	tvmaze := client.NewClient(cfg)
	panels := panel.NewController(store, tvmaze)

	return &App{
		cfg:    cfg,
		client: tvmaze,
		store:  store,
		server: server.New(cfg, tvmaze, panels, renderer),
		flush:  flush,
	}, nil
}

// NewSessionStore creates the configured panel state store
func NewSessionStore(cfg *config.Config) (session.Store, error) {
	provider := cfg.Session.Provider
	if provider == "" {
		provider = "memory"
	}

	store, err := session.New(provider, session.ProviderConfig{
		Size:          cfg.Session.Size,
		TTL:           config.ParseDuration("session.ttl", cfg.Session.TTL, defaultTTL),
		RedisAddress:  cfg.Session.Redis.Address,
		RedisPassword: cfg.Session.Redis.Password,
		RedisDB:       cfg.Session.Redis.DB,
		Group:         sessionMetricsGroup,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s session store: %w", provider, err)
	}
	return store, nil
}

// Handler returns the HTTP handler of the web server
func (a *App) Handler() http.Handler { return a.server.Handler() }

// Run serves HTTP (and metrics when enabled) until ctx is cancelled, then
// shuts everything down gracefully.
func (a *App) Run(ctx context.Context) error {
	logger := config.GetLogger()

	logger.Info().
		Str("tvmaze_domain", a.cfg.TvMazeDomain).
		Str("proxy_connection_string", a.cfg.ProxyConnectionString).
		Str("session_provider", a.cfg.Session.Provider).
		Int("server_port", a.cfg.Server.Port).
		Str("server_address", a.cfg.Server.Address).
		Msg("Application started with configuration")

	var metricsServer *http.Server
	if a.cfg.Metrics.Enabled {
		metricsServer = metrics.NewHTTPServer(a.cfg.Server.Address, a.cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("Failed to serve metrics")
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info().Msg("Received shutdown signal")
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Failed to shutdown HTTP server")
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown metrics server")
		}
	}

	if serveErr != nil {
		return fmt.Errorf("serve http: %w", serveErr)
	}
	logger.Info().Msg("Server stopped gracefully")
	return nil
}

// Close releases the client, the session store and flushes Sentry
func (a *App) Close() error {
	defer a.flush()
	return errors.Join(a.client.Close(), a.store.Close())
}
