package session

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// ProviderConfig describes where panel state of page sessions is kept and
// for how long. Each provider reads the fields it needs.
type ProviderConfig struct {
	// Size caps how many page sessions the memory store remembers; the least
	// recently clicked page is forgotten first.
	Size int

	// TTL is how long a page left idle keeps its panel state. A forgotten
	// page reads as both panels closed.
	TTL time.Duration

	// OnEvict observes page sessions dropped by the memory store.
	OnEvict EvictCallback

	// Redis connection, used by the "redis" provider so several server
	// instances see the same panel state.
	RedisAddress  string
	RedisPassword string
	RedisDB       int

	// KeyPrefix is prepended to page session ids in redis. Defaults to "showbrowser:session:".
	KeyPrefix string

	// Group labels the session_store_* metrics. Empty leaves the store uninstrumented.
	Group string
}

// Provider opens a Store for one backend.
type Provider func(cfg ProviderConfig) (Store, error)

var (
	mu        sync.RWMutex
	providers = make(map[string]Provider)
)

// Register makes a backend selectable by name through session.provider.
// Registering nil or a taken name panics.
func Register(name string, p Provider) {
	mu.Lock()
	defer mu.Unlock()

	if p == nil {
		panic("session: Register provider is nil")
	}
	if _, exists := providers[name]; exists {
		panic(fmt.Sprintf("session: provider %q already registered", name))
	}
	providers[name] = p
}

// New opens the panel state store of the named backend. With cfg.Group set,
// loads that find a page session count as hits, forgotten pages as misses,
// and the number of remembered pages is read at scrape time.
func New(name string, cfg ProviderConfig) (Store, error) {
	mu.RLock()
	p, ok := providers[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("session: unknown provider %q (registered: %v)", name, RegisteredProviders())
	}

	if cfg.Group == "" {
		return p(cfg)
	}

	group := cfg.Group
	original := cfg.OnEvict
	cfg.OnEvict = func(sessionID string) {
		EvictionsTotal.WithLabelValues(group).Inc()
		if original != nil {
			original(sessionID)
		}
	}

	inner, err := p(cfg)
	if err != nil {
		return nil, err
	}

	return newInstrumentedStore(inner, group), nil
}

// RegisteredProviders lists the selectable backends, sorted.
func RegisteredProviders() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
