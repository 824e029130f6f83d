package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Belphemur/ShowBrowser/v2/internal/config"
)

func newSearchCommand(newCatalog CatalogFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search shows by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := newCatalog(config.GetConfig())
			defer catalog.Close()

			shows := catalog.SearchShows(cmd.Context(), args[0])
			return printResult(cmd, shows, showRows(shows))
		},
	}
}

func newEpisodesCommand(newCatalog CatalogFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "episodes [show-id]",
		Short: "List the episodes of a show",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseShowID(args[0])
			if err != nil {
				return err
			}
			catalog := newCatalog(config.GetConfig())
			defer catalog.Close()

			episodes := catalog.GetEpisodes(cmd.Context(), id)
			return printResult(cmd, episodes, episodeRows(episodes))
		},
	}
}

func newGenresCommand(newCatalog CatalogFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "genres [show-id]",
		Short: "List the genres of a show",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseShowID(args[0])
			if err != nil {
				return err
			}
			catalog := newCatalog(config.GetConfig())
			defer catalog.Close()

			genres := catalog.GetGenres(cmd.Context(), id)
			return printResult(cmd, genres, genreRows(genres))
		},
	}
}

func parseShowID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("show id must be an integer, got %q", arg)
	}
	return id, nil
}
