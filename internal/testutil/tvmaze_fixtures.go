package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// IntPtr is a helper for creating *int values in tests
func IntPtr(v int) *int {
	return &v
}

// ShowOptions describes one show in a generated search response
type ShowOptions struct {
	ID      int
	Name    string
	Summary string // empty renders as null
	Image   string // medium poster URL, empty renders "image": null
	Genres  []string
	Score   float64
}

// EpisodeOptions describes one episode in a generated episodes response
type EpisodeOptions struct {
	ID     int
	Name   string
	Season *int // nil renders as null
	Number *int // nil renders as null
}

type imageJSON struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

type showJSON struct {
	ID      int        `json:"id"`
	Name    string     `json:"name"`
	Summary *string    `json:"summary"`
	Image   *imageJSON `json:"image"`
	Genres  []string   `json:"genres"`
}

func toShowJSON(s ShowOptions) showJSON {
	out := showJSON{ID: s.ID, Name: s.Name, Genres: s.Genres}
	if s.Summary != "" {
		out.Summary = &s.Summary
	}
	if s.Image != "" {
		out.Image = &imageJSON{Medium: s.Image, Original: s.Image}
	}
	if out.Genres == nil {
		out.Genres = []string{}
	}
	return out
}

// GenerateSearchJSON builds a /search/shows response body
func GenerateSearchJSON(shows []ShowOptions) string {
	type result struct {
		Score float64  `json:"score"`
		Show  showJSON `json:"show"`
	}
	results := make([]result, 0, len(shows))
	for _, s := range shows {
		results = append(results, result{Score: s.Score, Show: toShowJSON(s)})
	}
	return mustJSON(results)
}

// GenerateShowJSON builds a /shows/{id} response body
func GenerateShowJSON(show ShowOptions) string {
	return mustJSON(toShowJSON(show))
}

// GenerateEpisodesJSON builds a /shows/{id}/episodes response body
func GenerateEpisodesJSON(episodes []EpisodeOptions) string {
	type episode struct {
		ID     int    `json:"id"`
		Name   string `json:"name"`
		Season *int   `json:"season"`
		Number *int   `json:"number"`
	}
	out := make([]episode, 0, len(episodes))
	for _, e := range episodes {
		out = append(out, episode{ID: e.ID, Name: e.Name, Season: e.Season, Number: e.Number})
	}
	return mustJSON(out)
}

// NewTVMazeServer starts a fake TVMaze API serving the given path -> JSON body
// routes. Unknown paths answer 404. The server is closed with the test.
func NewTVMazeServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
