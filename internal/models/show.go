package models

// TvMazeImage is the poster block of a TVMaze show record. The API sends null when no poster exists.
type TvMazeImage struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// TvMazeShow is the raw show record returned by the TVMaze API
type TvMazeShow struct {
	ID      int          `json:"id"`
	Name    string       `json:"name"`
	Summary string       `json:"summary"` // HTML fragment, may be empty
	Image   *TvMazeImage `json:"image"`   // nil when the show has no poster
	Genres  []string     `json:"genres"`  // only consumed by the show detail lookup
}

// TvMazeSearchResult is the wrapper object the search endpoint returns around each matched show
type TvMazeSearchResult struct {
	Score float64    `json:"score"`
	Show  TvMazeShow `json:"show"`
}

// Show represents a normalized TV show in our application
type Show struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary"` // Trusted HTML from TVMaze, rendered unescaped
	Image   string `json:"image"`   // Medium poster URL or the placeholder
}

// NewShow normalizes a raw TVMaze show, substituting placeholder when the show has no medium poster.
func NewShow(raw TvMazeShow, placeholder string) Show {
	image := placeholder
	if raw.Image != nil && raw.Image.Medium != "" {
		image = raw.Image.Medium
	}
	return Show{
		ID:      raw.ID,
		Name:    raw.Name,
		Summary: raw.Summary,
		Image:   image,
	}
}
