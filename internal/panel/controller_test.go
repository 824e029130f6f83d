package panel

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Belphemur/ShowBrowser/v2/internal/models"
	"github.com/Belphemur/ShowBrowser/v2/internal/session"
)

// fakeDetails records every fetch and can hold fetches until released
type fakeDetails struct {
	mu           sync.Mutex
	episodeCalls []int
	genreCalls   []int

	episodes map[int][]models.Episode
	genres   map[int][]string

	started chan struct{} // receives once per held fetch when non-nil
	release chan struct{} // held fetches block until closed when non-nil
	hold    map[int]bool  // shows whose fetches are held; nil holds every show
}

func (f *fakeDetails) wait(showID int) {
	if f.hold != nil && !f.hold[showID] {
		return
	}
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
}

func (f *fakeDetails) GetEpisodes(_ context.Context, showID int) []models.Episode {
	f.mu.Lock()
	f.episodeCalls = append(f.episodeCalls, showID)
	f.mu.Unlock()
	f.wait(showID)
	if eps, ok := f.episodes[showID]; ok {
		return eps
	}
	return []models.Episode{}
}

func (f *fakeDetails) GetGenres(_ context.Context, showID int) []string {
	f.mu.Lock()
	f.genreCalls = append(f.genreCalls, showID)
	f.mu.Unlock()
	f.wait(showID)
	if g, ok := f.genres[showID]; ok {
		return g
	}
	return []string{}
}

func (f *fakeDetails) calls() (episodes, genres []int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.episodeCalls...), append([]int(nil), f.genreCalls...)
}

func newTestController(t *testing.T, details *fakeDetails) *Controller {
	t.Helper()
	store, err := session.New("memory", session.ProviderConfig{Size: 100, TTL: time.Hour})
	if err != nil {
		t.Fatalf("New session store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return NewController(store, details)
}

func newFakeDetails() *fakeDetails {
	return &fakeDetails{
		episodes: map[int][]models.Episode{
			82: {{ID: 4952, Name: "Winter is Coming", Season: 1, Number: 1}},
		},
		genres: map[int][]string{
			82: {"Drama", "Adventure", "Fantasy"},
		},
	}
}

func TestController_InitialStateClosed(t *testing.T) {
	c := newTestController(t, newFakeDetails())

	state := c.State(context.Background(), "fresh-page")
	if state.Episodes.Open || state.Genres.Open {
		t.Fatalf("Expected both panels closed initially, got %+v", state)
	}
}

func TestController_ToggleLaw(t *testing.T) {
	for _, kind := range models.PanelKinds {
		t.Run(kind.String(), func(t *testing.T) {
			details := newFakeDetails()
			c := newTestController(t, details)
			ctx := context.Background()

			first := c.Toggle(ctx, "page", kind, 82)
			if !first.Open {
				t.Fatal("Expected first click to open the panel")
			}
			eps, genres := details.calls()
			if len(eps)+len(genres) != 1 {
				t.Fatalf("Expected exactly 1 fetch after opening, got episodes=%v genres=%v", eps, genres)
			}

			second := c.Toggle(ctx, "page", kind, 82)
			if second.Open {
				t.Fatal("Expected second click to close the panel")
			}
			eps, genres = details.calls()
			if len(eps)+len(genres) != 1 {
				t.Fatalf("Expected no fetch when closing, got episodes=%v genres=%v", eps, genres)
			}

			if c.State(ctx, "page").Get(kind).Open {
				t.Error("Expected stored state to be closed")
			}
		})
	}
}

func TestController_OpenReturnsContent(t *testing.T) {
	c := newTestController(t, newFakeDetails())
	ctx := context.Background()

	episodes := c.Toggle(ctx, "page", models.PanelEpisodes, 82)
	if len(episodes.Episodes) != 1 || episodes.Episodes[0].Name != "Winter is Coming" {
		t.Errorf("Expected episodes of show 82, got %+v", episodes.Episodes)
	}
	if episodes.Genres != nil {
		t.Errorf("Expected no genres on an episodes result, got %v", episodes.Genres)
	}

	genres := c.Toggle(ctx, "page", models.PanelGenres, 82)
	if len(genres.Genres) != 3 || genres.Genres[0] != "Drama" {
		t.Errorf("Expected genres of show 82, got %v", genres.Genres)
	}
}

func TestController_ClickOnOtherShowClosesWithoutFetching(t *testing.T) {
	details := newFakeDetails()
	c := newTestController(t, details)
	ctx := context.Background()

	opened := c.Toggle(ctx, "page", models.PanelEpisodes, 82)
	if !opened.Open || opened.ShowID != 82 {
		t.Fatalf("Expected episodes panel open for show 82, got %+v", opened)
	}
	if c.State(ctx, "page").Episodes.ShowID != 82 {
		t.Errorf("Expected state to record show 82")
	}

	closed := c.Toggle(ctx, "page", models.PanelEpisodes, 91)
	if closed.Open {
		t.Fatal("Expected click on show 91 to close the open episodes panel")
	}

	eps, _ := details.calls()
	if len(eps) != 1 || eps[0] != 82 {
		t.Errorf("Expected only show 82 to be fetched, got %v", eps)
	}
}

func TestController_PanelsAreIndependent(t *testing.T) {
	c := newTestController(t, newFakeDetails())
	ctx := context.Background()

	c.Toggle(ctx, "page", models.PanelEpisodes, 82)
	genres := c.Toggle(ctx, "page", models.PanelGenres, 82)
	if !genres.Open {
		t.Fatal("Expected genres panel to open while episodes is open")
	}

	state := c.State(ctx, "page")
	if !state.Episodes.Open || !state.Genres.Open {
		t.Fatalf("Expected both panels open, got %+v", state)
	}
}

func TestController_CloseAll(t *testing.T) {
	details := newFakeDetails()
	c := newTestController(t, details)
	ctx := context.Background()

	c.Toggle(ctx, "page", models.PanelEpisodes, 82)
	c.Toggle(ctx, "page", models.PanelGenres, 82)
	c.CloseAll(ctx, "page")

	state := c.State(ctx, "page")
	if state.Episodes.Open || state.Genres.Open {
		t.Fatalf("Expected both panels closed after CloseAll, got %+v", state)
	}

	// The next click opens again and fetches
	if !c.Toggle(ctx, "page", models.PanelEpisodes, 82).Open {
		t.Error("Expected click after CloseAll to open the panel")
	}
	if eps, _ := details.calls(); len(eps) != 2 {
		t.Errorf("Expected 2 episode fetches, got %v", eps)
	}
}

func TestController_CloseAll_UnknownSession(t *testing.T) {
	c := newTestController(t, newFakeDetails())
	c.CloseAll(context.Background(), "never-seen")

	if state := c.State(context.Background(), "never-seen"); state != (models.PanelVisibility{}) {
		t.Errorf("Expected zero state, got %+v", state)
	}
}

func TestController_SessionsAreIsolated(t *testing.T) {
	c := newTestController(t, newFakeDetails())
	ctx := context.Background()

	c.Toggle(ctx, "tab-a", models.PanelEpisodes, 82)

	if !c.Toggle(ctx, "tab-b", models.PanelEpisodes, 82).Open {
		t.Error("Expected another page session to start with its panel closed")
	}
}

func TestController_FailedFetchStillOpensWithEmptyContent(t *testing.T) {
	c := newTestController(t, newFakeDetails())

	result := c.Toggle(context.Background(), "page", models.PanelGenres, 404)
	if !result.Open {
		t.Fatal("Expected panel to open even when the fetch yields nothing")
	}
	if result.Genres == nil || len(result.Genres) != 0 {
		t.Errorf("Expected empty genres, got %v", result.Genres)
	}
}

func TestController_LateFetchDoesNotReopenClosedPanel(t *testing.T) {
	details := newFakeDetails()
	details.started = make(chan struct{}, 1)
	details.release = make(chan struct{})
	c := newTestController(t, details)
	ctx := context.Background()

	done := make(chan Result, 1)
	go func() {
		done <- c.Toggle(ctx, "page", models.PanelEpisodes, 82)
	}()

	// Wait until the opening fetch is in flight, then close the panel
	<-details.started
	if c.Toggle(ctx, "page", models.PanelEpisodes, 82).Open {
		t.Fatal("Expected the second click to close the panel")
	}

	close(details.release)
	late := <-done

	if late.Open || !late.Stale {
		t.Fatalf("Expected late open to be reported stale and closed, got %+v", late)
	}
	if c.State(ctx, "page").Episodes.Open {
		t.Error("Expected panel to stay closed after the late fetch")
	}
}

func TestController_LateFetchLeavesReopenedPanelOpen(t *testing.T) {
	details := newFakeDetails()
	details.episodes[169] = []models.Episode{{ID: 1, Name: "Pilot", Season: 1, Number: 1}}
	details.started = make(chan struct{}, 1)
	details.release = make(chan struct{})
	details.hold = map[int]bool{82: true}
	c := newTestController(t, details)
	ctx := context.Background()

	done := make(chan Result, 1)
	go func() {
		done <- c.Toggle(ctx, "page", models.PanelEpisodes, 82)
	}()
	<-details.started

	if c.Toggle(ctx, "page", models.PanelEpisodes, 82).Open {
		t.Fatal("Expected the second click to close the panel")
	}
	reopened := c.Toggle(ctx, "page", models.PanelEpisodes, 169)
	if !reopened.Open || len(reopened.Episodes) != 1 {
		t.Fatalf("Expected the third click to open show 169, got %+v", reopened)
	}

	close(details.release)
	late := <-done

	if !late.Stale || late.Episodes != nil {
		t.Fatalf("Expected the late open of show 82 to be stale without content, got %+v", late)
	}
	state := c.State(ctx, "page").Episodes
	if !state.Open || state.ShowID != 169 {
		t.Errorf("Expected the panel to stay open on show 169, got %+v", state)
	}
	if c.Toggle(ctx, "page", models.PanelEpisodes, 169).Open {
		t.Error("Expected the next click to close the panel showing 169")
	}
}
