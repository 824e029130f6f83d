// Package session keeps the detail panel state of every page session.
//
// A page session starts on each page load, so reloading resets both panels.
// Stores are created through a provider registry; "memory" and "redis" are
// built in.
package session

import (
	"context"

	"github.com/Belphemur/ShowBrowser/v2/internal/models"
)

// EvictCallback is called when a session is evicted from the store.
// The redis provider relies on key expiry and never calls it.
type EvictCallback func(sessionID string)

// Store persists the panel visibility of page sessions.
type Store interface {
	// Load returns the stored state and true, or the zero state (both panels
	// closed) and false when the session is unknown or expired.
	Load(ctx context.Context, sessionID string) (models.PanelVisibility, bool)

	// Save stores the state for the session, refreshing its TTL.
	Save(ctx context.Context, sessionID string, v models.PanelVisibility)

	// Delete forgets the session.
	Delete(ctx context.Context, sessionID string)

	// Len returns the number of sessions currently stored.
	Len() int

	// Close releases any resources held by the store (e.g., network connections).
	Close() error
}
