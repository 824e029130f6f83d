package client

import (
	"context"
	"fmt"

	"github.com/Belphemur/ShowBrowser/v2/internal/apperrors"
	"github.com/Belphemur/ShowBrowser/v2/internal/config"
	"github.com/Belphemur/ShowBrowser/v2/internal/models"
)

// GetEpisodes fetches /shows/{id}/episodes and projects each entry to {id, name, season, number}.
func (c *client) GetEpisodes(ctx context.Context, showID int) []models.Episode {
	logger := config.GetLogger()

	var raw []models.TvMazeEpisode
	if err := c.getJSON(ctx, c.episodesLookup(showID), &raw); err != nil {
		c.recoverFailure(ctx, err)
		return []models.Episode{}
	}

	episodes := make([]models.Episode, 0, len(raw))
	for _, e := range raw {
		episodes = append(episodes, models.NewEpisode(e))
	}

	logger.Debug().Int("showID", showID).Int("count", len(episodes)).Msg("Fetched episodes")
	return episodes
}

// GetGenres fetches the full /shows/{id} record and returns its genres field.
func (c *client) GetGenres(ctx context.Context, showID int) []string {
	logger := config.GetLogger()

	var show models.TvMazeShow
	if err := c.getJSON(ctx, c.genresLookup(showID), &show); err != nil {
		c.recoverFailure(ctx, err)
		return []string{}
	}

	genres := show.Genres
	if genres == nil {
		genres = []string{}
	}

	logger.Debug().Int("showID", showID).Strs("genres", genres).Msg("Fetched genres")
	return genres
}

func (c *client) episodesLookup(showID int) lookup {
	return lookup{
		operation: opGetEpisodes,
		url:       fmt.Sprintf("%s/shows/%d/episodes", c.baseURL, showID),
		notFound:  apperrors.NewShowNotFoundError(showID),
	}
}

func (c *client) genresLookup(showID int) lookup {
	return lookup{
		operation: opGetGenres,
		url:       fmt.Sprintf("%s/shows/%d", c.baseURL, showID),
		notFound:  apperrors.NewShowNotFoundError(showID),
	}
}
