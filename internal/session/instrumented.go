package session

import (
	"context"

	"github.com/Belphemur/ShowBrowser/v2/internal/models"
)

// instrumentedStore wraps a Store and records hit/miss metrics under its group label.
type instrumentedStore struct {
	inner Store
	group string
}

// newInstrumentedStore wraps inner with metric instrumentation for the given group.
// The live session count is read from inner.Len() at scrape time, which stays
// correct for backends where expiry happens outside the application.
func newInstrumentedStore(inner Store, group string) *instrumentedStore {
	registerEntriesCollector(group, inner.Len)
	return &instrumentedStore{inner: inner, group: group}
}

func (s *instrumentedStore) Load(ctx context.Context, sessionID string) (models.PanelVisibility, bool) {
	v, ok := s.inner.Load(ctx, sessionID)
	if ok {
		HitsTotal.WithLabelValues(s.group).Inc()
	} else {
		MissesTotal.WithLabelValues(s.group).Inc()
	}
	return v, ok
}

func (s *instrumentedStore) Save(ctx context.Context, sessionID string, v models.PanelVisibility) {
	s.inner.Save(ctx, sessionID, v)
}

func (s *instrumentedStore) Delete(ctx context.Context, sessionID string) {
	s.inner.Delete(ctx, sessionID)
}

func (s *instrumentedStore) Len() int {
	return s.inner.Len()
}

// Close unregisters the entries collector and closes the underlying store.
func (s *instrumentedStore) Close() error {
	unregisterEntriesCollector(s.group)
	return s.inner.Close()
}
