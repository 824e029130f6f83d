package session

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Belphemur/ShowBrowser/v2/internal/models"
)

func init() {
	Register("memory", newMemoryStore)
}

// memoryStore keeps sessions in a size-bounded, expiring LRU.
type memoryStore struct {
	inner *lru.LRU[string, models.PanelVisibility]
}

func newMemoryStore(cfg ProviderConfig) (Store, error) {
	var onEvict func(string, models.PanelVisibility)
	if cfg.OnEvict != nil {
		onEvict = func(sessionID string, _ models.PanelVisibility) {
			cfg.OnEvict(sessionID)
		}
	}
	return &memoryStore{
		inner: lru.NewLRU[string, models.PanelVisibility](cfg.Size, onEvict, cfg.TTL),
	}, nil
}

func (m *memoryStore) Load(_ context.Context, sessionID string) (models.PanelVisibility, bool) {
	return m.inner.Get(sessionID)
}

func (m *memoryStore) Save(_ context.Context, sessionID string, v models.PanelVisibility) {
	m.inner.Add(sessionID, v)
}

func (m *memoryStore) Delete(_ context.Context, sessionID string) {
	m.inner.Remove(sessionID)
}

func (m *memoryStore) Len() int {
	return m.inner.Len()
}

func (m *memoryStore) Close() error {
	return nil
}
