package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/Belphemur/ShowBrowser/v2/internal/apperrors"
	"github.com/Belphemur/ShowBrowser/v2/internal/metrics"
)

// Operation names, used as metric labels and in RemoteFetch errors
const (
	opSearchShows = "search_shows"
	opGetEpisodes = "get_episodes"
	opGetGenres   = "get_genres"
)

// lookup describes a single GET against the TVMaze API
type lookup struct {
	operation string
	url       string
	notFound  *apperrors.ErrNotFound // returned on 404
}

// getJSON performs the lookup and decodes the JSON body into out.
// Any failure is returned as an *apperrors.ErrRemoteFetch.
func (c *client) getJSON(ctx context.Context, l lookup, out any) error {
	start := time.Now()
	err := c.doGetJSON(ctx, l, out)
	metrics.TvMazeRequestDuration.WithLabelValues(l.operation).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.TvMazeRequestsTotal.WithLabelValues(l.operation, metrics.StatusError).Inc()
		return apperrors.NewRemoteFetchError(l.operation, l.url, err)
	}

	metrics.TvMazeRequestsTotal.WithLabelValues(l.operation, metrics.StatusSuccess).Inc()
	return nil
}

func (c *client) doGetJSON(ctx context.Context, l lookup, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return l.notFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &apperrors.ErrUnexpectedStatus{URL: l.url, StatusCode: resp.StatusCode}
	}

	// TVMaze serves UTF-8, but honour whatever charset the Content-Type declares
	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return fmt.Errorf("detect charset: %w", err)
	}

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}
