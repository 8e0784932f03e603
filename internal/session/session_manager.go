package session

import (
	"context"
	"sync"
	"time"

	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/catalog"
)

// Stores bundles the per-session state engines. The two stores never call
// each other; composition (e.g. "add selected product to cart") happens in
// the handlers by reading one snapshot and dispatching into the other.
type Stores struct {
	Cart    *cart.Store
	Catalog *catalog.Store
}

type entry struct {
	stores   *Stores
	lastSeen time.Time
}

// Manager maps session ids to their store pair, creating on first use and
// evicting sessions idle longer than idleTTL. Cart state intentionally dies
// with the session; nothing is persisted.
type Manager struct {
	mu       sync.Mutex
	fetcher  catalog.Fetcher
	idleTTL  time.Duration
	sessions map[string]*entry
}

func NewManager(fetcher catalog.Fetcher, idleTTL time.Duration) *Manager {
	return &Manager{
		fetcher:  fetcher,
		idleTTL:  idleTTL,
		sessions: map[string]*entry{},
	}
}

// Get returns the store pair for a session, creating it on demand.
func (m *Manager) Get(sessionID string) *Stores {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[sessionID]
	if !ok {
		e = &entry{
			stores: &Stores{
				Cart:    cart.NewStore(),
				Catalog: catalog.NewStore(m.fetcher),
			},
		}
		m.sessions[sessionID] = e
	}
	e.lastSeen = time.Now()
	return e.stores
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// StartJanitor prunes idle sessions until ctx is cancelled.
func (m *Manager) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.prune(time.Now())
			}
		}
	}()
}

func (m *Manager) prune(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, e := range m.sessions {
		if now.Sub(e.lastSeen) > m.idleTTL {
			delete(m.sessions, id)
		}
	}
}
