package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/Belphemur/ShowBrowser/v2/internal/config"
	"github.com/Belphemur/ShowBrowser/v2/internal/testutil"
)

func TestNewSessionStore_DefaultsToMemory(t *testing.T) {
	store, err := NewSessionStore(&config.Config{})
	if err != nil {
		t.Fatalf("NewSessionStore: %v", err)
	}
	defer store.Close()

	if _, ok := store.Load(context.Background(), "nobody"); ok {
		t.Error("Expected a fresh store to be empty")
	}
}

func TestNewSessionStore_UnknownProvider(t *testing.T) {
	cfg := &config.Config{}
	cfg.Session.Provider = "memcached"

	if _, err := NewSessionStore(cfg); err == nil {
		t.Fatal("Expected an error for an unknown provider")
	}
}

func TestApp_EndToEnd(t *testing.T) {
	tvmaze := testutil.NewTVMazeServer(t, map[string]string{
		"/search/shows": testutil.GenerateSearchJSON([]testutil.ShowOptions{
			{ID: 169, Name: "Breaking Bad", Summary: "<p>Chemistry</p>", Score: 1},
		}),
		"/shows/169": testutil.GenerateShowJSON(testutil.ShowOptions{ID: 169, Name: "Breaking Bad", Genres: []string{"Drama", "Crime"}}),
	})

	cfg := &config.Config{TvMazeDomain: tvmaze.URL}
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	web := httptest.NewServer(a.Handler())
	defer web.Close()

	resp, err := http.Get(web.URL + "/shows?q=breaking")
	if err != nil {
		t.Fatalf("GET /shows: %v", err)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	card := doc.Find(".Show")
	if card.Length() != 1 || card.Find("h5").Text() != "Breaking Bad" {
		t.Fatalf("Expected one Breaking Bad card, got %d", card.Length())
	}
	if src, _ := card.Find("img").Attr("src"); src != config.DefaultPlaceholderImageURL {
		t.Errorf("Expected placeholder poster, got %q", src)
	}

	toggle, err := http.Post(web.URL+"/panels/genres/toggle", "application/x-www-form-urlencoded", strings.NewReader("show_id=169"))
	if err != nil {
		t.Fatalf("POST toggle: %v", err)
	}
	defer toggle.Body.Close()
	if toggle.StatusCode != http.StatusOK {
		t.Errorf("Expected 200 from toggle, got %d", toggle.StatusCode)
	}
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Address = "127.0.0.1"
	cfg.Server.Port = 0

	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := a.Run(ctx); err != nil {
		t.Errorf("Expected clean shutdown, got %v", err)
	}
}
