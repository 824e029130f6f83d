package view

import (
	"fmt"
	"html/template"

	"github.com/gosimple/slug"

	"github.com/Belphemur/ShowBrowser/v2/internal/models"
)

// ShowCard is the display unit for one show in the list
type ShowCard struct {
	ID      int
	Anchor  string // element id, stable across searches
	Name    string
	Image   string
	Summary template.HTML // trusted markup from TVMaze, inserted unescaped
}

// NewShowCards maps shows to cards, preserving order
func NewShowCards(shows []models.Show) []ShowCard {
	cards := make([]ShowCard, 0, len(shows))
	for _, s := range shows {
		cards = append(cards, ShowCard{
			ID:      s.ID,
			Anchor:  showAnchor(s),
			Name:    s.Name,
			Image:   s.Image,
			Summary: template.HTML(s.Summary),
		})
	}
	return cards
}

func showAnchor(s models.Show) string {
	if name := slug.Make(s.Name); name != "" {
		return fmt.Sprintf("show-%d-%s", s.ID, name)
	}
	return fmt.Sprintf("show-%d", s.ID)
}

// EpisodeLabel formats an episode list entry, e.g. "Pilot (season 1, episode 1)"
func EpisodeLabel(e models.Episode) string {
	return fmt.Sprintf("%s (season %d, episode %d)", e.Name, e.Season, e.Number)
}

// EpisodeLabels formats every episode with EpisodeLabel
func EpisodeLabels(episodes []models.Episode) []string {
	labels := make([]string, 0, len(episodes))
	for _, e := range episodes {
		labels = append(labels, EpisodeLabel(e))
	}
	return labels
}
