// Package view turns catalog data into HTML fragments.
//
// Every fragment replaces the whole content of its container, so rendering
// a new set never leaves items of a previous one behind.
package view

import (
	"fmt"
	"html/template"
	"io"

	"github.com/Belphemur/ShowBrowser/v2/internal/models"
)

// PageData feeds the full page template
type PageData struct {
	SessionID string // page session sent back by the page script
	Query     string
	Shows     []ShowCard
}

// Renderer executes the page and fragment templates
type Renderer struct {
	tpl *template.Template
}

// NewRenderer parses all templates
func NewRenderer() (*Renderer, error) {
	tpl := template.New("view")
	for _, src := range []string{showListTemplate, panelItemsTemplate, pageScript, pageTemplate} {
		if _, err := tpl.Parse(src); err != nil {
			return nil, fmt.Errorf("parse templates: %w", err)
		}
	}
	return &Renderer{tpl: tpl}, nil
}

// RenderPage writes the full page with the given search state
func (r *Renderer) RenderPage(w io.Writer, data PageData) error {
	if data.Shows == nil {
		data.Shows = []ShowCard{}
	}
	return r.tpl.ExecuteTemplate(w, "page", data)
}

// RenderShowList writes the show-list container content
func (r *Renderer) RenderShowList(w io.Writer, shows []models.Show) error {
	return r.tpl.ExecuteTemplate(w, "showList", NewShowCards(shows))
}

// RenderEpisodes writes the episode panel list items
func (r *Renderer) RenderEpisodes(w io.Writer, episodes []models.Episode) error {
	return r.tpl.ExecuteTemplate(w, "panelItems", EpisodeLabels(episodes))
}

// RenderGenres writes the genre panel list items
func (r *Renderer) RenderGenres(w io.Writer, genres []string) error {
	return r.tpl.ExecuteTemplate(w, "panelItems", genres)
}
