package models

// TvMazeEpisode is the raw episode record from /shows/{id}/episodes.
// Season and number are null for some specials.
type TvMazeEpisode struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Season *int   `json:"season"`
	Number *int   `json:"number"`
}

// Episode represents a normalized episode
type Episode struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Season int    `json:"season"`
	Number int    `json:"number"`
}

// NewEpisode projects a raw episode to {id, name, season, number}; null season or number become 0.
func NewEpisode(raw TvMazeEpisode) Episode {
	e := Episode{ID: raw.ID, Name: raw.Name}
	if raw.Season != nil {
		e.Season = *raw.Season
	}
	if raw.Number != nil {
		e.Number = *raw.Number
	}
	return e
}
