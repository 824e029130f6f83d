package models

import "github.com/Belphemur/ShowBrowser/v2/internal/apperrors"

// PanelKind identifies one of the two detail panels shown below the show list
type PanelKind string

const (
	PanelEpisodes PanelKind = "episodes"
	PanelGenres   PanelKind = "genres"
)

// PanelKinds lists every panel in display order
var PanelKinds = []PanelKind{PanelEpisodes, PanelGenres}

// ParsePanelKind converts a route value into a PanelKind
func ParsePanelKind(s string) (PanelKind, error) {
	switch PanelKind(s) {
	case PanelEpisodes, PanelGenres:
		return PanelKind(s), nil
	}
	return "", &apperrors.ErrInvalidPanel{Name: s}
}

func (k PanelKind) String() string {
	return string(k)
}

// PanelState is the open/closed state of a single panel.
// Generation increases on every transition so a fetch that started before a
// later transition can detect that its result is stale.
type PanelState struct {
	Open       bool   `json:"open"`
	ShowID     int    `json:"showId,omitempty"` // show whose content was last opened
	Generation uint64 `json:"generation"`
}

// PanelVisibility holds the two independent panel states of one page session.
// The zero value has both panels closed.
type PanelVisibility struct {
	Episodes PanelState `json:"episodes"`
	Genres   PanelState `json:"genres"`
}

// Get returns the state of the given panel
func (v PanelVisibility) Get(kind PanelKind) PanelState {
	if kind == PanelGenres {
		return v.Genres
	}
	return v.Episodes
}

// With returns a copy of v with the given panel replaced
func (v PanelVisibility) With(kind PanelKind, s PanelState) PanelVisibility {
	if kind == PanelGenres {
		v.Genres = s
	} else {
		v.Episodes = s
	}
	return v
}
