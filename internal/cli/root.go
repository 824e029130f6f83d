// Package cli implements the showbrowser command line.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Belphemur/ShowBrowser/v2/internal/client"
	"github.com/Belphemur/ShowBrowser/v2/internal/config"
	"github.com/Belphemur/ShowBrowser/v2/internal/models"
)

// Catalog is what the lookup commands query
type Catalog interface {
	SearchShows(ctx context.Context, query string) []models.Show
	GetEpisodes(ctx context.Context, showID int) []models.Episode
	GetGenres(ctx context.Context, showID int) []string
	Close() error
}

// CatalogFactory opens a catalog for a single command run
type CatalogFactory func(cfg *config.Config) Catalog

// DefaultCatalog opens the TVMaze client
func DefaultCatalog(cfg *config.Config) Catalog {
	return client.NewClient(cfg)
}

// NewRootCommand builds the showbrowser command tree
func NewRootCommand(newCatalog CatalogFactory) *cobra.Command {
	root := &cobra.Command{
		Use:   "showbrowser",
		Short: "Browse TV shows from TVMaze",
		Long: `ShowBrowser searches the TVMaze catalog and shows episodes and genres
of each show, either in the browser (serve) or on the command line.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("output")
			return validateOutput(format)
		},
	}

	root.PersistentFlags().StringP("output", "o", outputJSON, "output format: json, yaml or text")

	root.AddCommand(
		newServeCommand(),
		newSearchCommand(newCatalog),
		newEpisodesCommand(newCatalog),
		newGenresCommand(newCatalog),
	)
	return root
}

// Execute runs the root command with the TVMaze client
func Execute() error {
	return NewRootCommand(DefaultCatalog).Execute()
}
