package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Belphemur/ShowBrowser/v2/internal/apperrors"
	"github.com/Belphemur/ShowBrowser/v2/internal/config"
	"github.com/Belphemur/ShowBrowser/v2/internal/models"
)

// SearchShows queries /search/shows and maps every wrapper object to a Show.
// The result has one entry per wrapper object, or is empty when the lookup fails.
func (c *client) SearchShows(ctx context.Context, query string) []models.Show {
	logger := config.GetLogger()

	l := lookup{
		operation: opSearchShows,
		url:       fmt.Sprintf("%s/search/shows?q=%s", c.baseURL, url.QueryEscape(query)),
		notFound:  apperrors.NewNotFoundError("search results", query),
	}

	var results []models.TvMazeSearchResult
	if err := c.getJSON(ctx, l, &results); err != nil {
		c.recoverFailure(ctx, err)
		return []models.Show{}
	}

	shows := make([]models.Show, 0, len(results))
	for _, result := range results {
		shows = append(shows, models.NewShow(result.Show, c.placeholder))
	}

	logger.Debug().Str("query", query).Int("count", len(shows)).Msg("Show search completed")
	return shows
}
