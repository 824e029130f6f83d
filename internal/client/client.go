package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/Belphemur/ShowBrowser/v2/internal/config"
	"github.com/Belphemur/ShowBrowser/v2/internal/diagnostics"
	"github.com/Belphemur/ShowBrowser/v2/internal/models"
)

// Client defines the read-only TVMaze lookups used by the show browser.
//
// Every lookup is fail-soft: network, status and decoding failures are logged,
// reported, and turned into an empty (non-nil) result. No error is returned.
type Client interface {
	// SearchShows runs a free-text show search and normalizes every match.
	SearchShows(ctx context.Context, query string) []models.Show
	// GetEpisodes lists the episodes of a show.
	GetEpisodes(ctx context.Context, showID int) []models.Episode
	// GetGenres returns the genres field of a show's full record.
	GetGenres(ctx context.Context, showID int) []string

	// Close releases idle connections held by the client.
	Close() error
}

// client implements the Client interface
type client struct {
	httpClient  *http.Client
	baseURL     string
	placeholder string
}

// NewClient creates a new client instance with proxy and rate limit configuration if provided
func NewClient(cfg *config.Config) Client {
	// No timeout unless one is configured
	timeout := config.ParseDuration("client_timeout", cfg.ClientTimeout, 0)

	// Clone DefaultTransport to preserve all its settings (timeouts, connection pooling, HTTP/2, etc.)
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			// Log error but continue without proxy
			logger := config.GetLogger()
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	placeholder := cfg.PlaceholderImageURL
	if placeholder == "" {
		placeholder = config.DefaultPlaceholderImageURL
	}

	baseURL := strings.TrimRight(cfg.TvMazeDomain, "/")
	if baseURL == "" {
		baseURL = config.DefaultTvMazeDomain
	}

	return &client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: newTransport(cfg, baseTransport),
		},
		baseURL:     baseURL,
		placeholder: placeholder,
	}
}

// recoverFailure applies the fail-soft policy: the failure is logged and
// reported, never returned.
func (c *client) recoverFailure(ctx context.Context, err error) {
	logger := config.GetLogger()
	logger.Error().Err(err).Msg("TVMaze lookup failed, returning empty result")
	diagnostics.ReportFetchFailure(ctx, err)
}

// Close releases idle connections held by the client.
func (c *client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
