// Package panel implements the open/closed behaviour of the episodes and
// genres detail panels.
//
// Each panel moves Closed -> Open on a trigger click, fetching its content, and
// Open -> Closed on the next click of the same kind without fetching. The
// closing click is not checked against the show being displayed: clicking
// "Episodes" on another show while the episodes panel is open only closes it.
package panel

import (
	"context"
	"sync"

	"github.com/Belphemur/ShowBrowser/v2/internal/config"
	"github.com/Belphemur/ShowBrowser/v2/internal/metrics"
	"github.com/Belphemur/ShowBrowser/v2/internal/models"
	"github.com/Belphemur/ShowBrowser/v2/internal/session"
)

// DetailFetcher loads panel content. Implementations are expected to be
// fail-soft and return empty slices on failure.
type DetailFetcher interface {
	GetEpisodes(ctx context.Context, showID int) []models.Episode
	GetGenres(ctx context.Context, showID int) []string
}

// Result describes the panel after a toggle.
type Result struct {
	Kind   models.PanelKind
	Open   bool
	ShowID int

	// Stale is set when the panel was opened but a later transition happened
	// before its content arrived. The content is dropped and the stored state,
	// owned by that later transition, is left untouched.
	Stale bool

	Episodes []models.Episode // set when Kind is episodes and Open
	Genres   []string         // set when Kind is genres and Open
}

// Controller owns the panel state of every page session.
type Controller struct {
	store   session.Store
	details DetailFetcher

	// mu serializes load-modify-save cycles; it is never held during a fetch.
	mu sync.Mutex
}

// NewController creates a controller persisting state in store and fetching content from details.
func NewController(store session.Store, details DetailFetcher) *Controller {
	return &Controller{store: store, details: details}
}

// Toggle flips the kind panel of the session, fetching content exactly once when it opens.
func (c *Controller) Toggle(ctx context.Context, sessionID string, kind models.PanelKind, showID int) Result {
	logger := config.GetLogger()

	next := c.flip(ctx, sessionID, kind, showID)
	if !next.Open {
		metrics.PanelTogglesTotal.WithLabelValues(kind.String(), metrics.TransitionClose).Inc()
		logger.Debug().Str("session", sessionID).Str("panel", kind.String()).Int("showID", showID).Msg("Panel closed")
		return Result{Kind: kind, ShowID: showID}
	}

	result := Result{Kind: kind, Open: true, ShowID: showID}
	switch kind {
	case models.PanelEpisodes:
		result.Episodes = c.details.GetEpisodes(ctx, showID)
	case models.PanelGenres:
		result.Genres = c.details.GetGenres(ctx, showID)
	}

	if !c.isCurrent(ctx, sessionID, kind, next.Generation) {
		metrics.PanelTogglesTotal.WithLabelValues(kind.String(), metrics.TransitionStale).Inc()
		logger.Debug().Str("session", sessionID).Str("panel", kind.String()).Int("showID", showID).Msg("Dropping stale panel content")
		return Result{Kind: kind, ShowID: showID, Stale: true}
	}

	metrics.PanelTogglesTotal.WithLabelValues(kind.String(), metrics.TransitionOpen).Inc()
	logger.Debug().Str("session", sessionID).Str("panel", kind.String()).Int("showID", showID).Msg("Panel opened")
	return result
}

// CloseAll forces both panels of the session closed. A new search calls it
// before rendering results.
func (c *Controller) CloseAll(ctx context.Context, sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.store.Load(ctx, sessionID)
	if !ok {
		return
	}

	changed := false
	for _, kind := range models.PanelKinds {
		st := v.Get(kind)
		if !st.Open {
			continue
		}
		v = v.With(kind, models.PanelState{Generation: st.Generation + 1})
		metrics.PanelTogglesTotal.WithLabelValues(kind.String(), metrics.TransitionClose).Inc()
		changed = true
	}

	if changed {
		c.store.Save(ctx, sessionID, v)
	}
}

// State returns the current panel visibility of the session.
func (c *Controller) State(ctx context.Context, sessionID string) models.PanelVisibility {
	v, _ := c.store.Load(ctx, sessionID)
	return v
}

// flip performs the state transition and returns the new panel state.
func (c *Controller) flip(ctx context.Context, sessionID string, kind models.PanelKind, showID int) models.PanelState {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, _ := c.store.Load(ctx, sessionID)
	cur := v.Get(kind)

	next := models.PanelState{Generation: cur.Generation + 1}
	if !cur.Open {
		next.Open = true
		next.ShowID = showID
	}

	c.store.Save(ctx, sessionID, v.With(kind, next))
	return next
}

// isCurrent reports whether the panel is still in the state set by the transition
// with the given generation. When the state cannot be read back (e.g. the store
// lost it) the transition is assumed current.
func (c *Controller) isCurrent(ctx context.Context, sessionID string, kind models.PanelKind, generation uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.store.Load(ctx, sessionID)
	if !ok {
		return true
	}
	st := v.Get(kind)
	return st.Open && st.Generation == generation
}
