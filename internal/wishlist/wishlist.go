// Package wishlist owns per-session wishlist state: an order-preserving set
// of product ids with the same write-through persistence and failure
// semantics as the cart.
package wishlist

import (
	"context"
	"log"
	"sync"
)

type Store interface {
	Load(ctx context.Context, session string) ([]string, error)
	Save(ctx context.Context, session string, ids []string) error
}

type Manager struct {
	mu     sync.Mutex
	store  Store
	lists  map[string][]string
	loaded map[string]bool
	subs   []func(session string)
}

func NewManager(store Store) *Manager {
	return &Manager{
		store:  store,
		lists:  make(map[string][]string),
		loaded: make(map[string]bool),
	}
}

func (m *Manager) Subscribe(fn func(session string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// Add inserts productID at the end if absent. Idempotent.
func (m *Manager) Add(ctx context.Context, session, productID string) {
	m.mu.Lock()
	m.hydrate(ctx, session)
	if contains(m.lists[session], productID) {
		m.mu.Unlock()
		return
	}
	m.lists[session] = append(m.lists[session], productID)
	m.persist(ctx, session)
	m.mu.Unlock()
	m.notify(session)
}

// Remove deletes productID if present. Idempotent.
func (m *Manager) Remove(ctx context.Context, session, productID string) {
	m.mu.Lock()
	m.hydrate(ctx, session)
	ids := m.lists[session]
	for i, id := range ids {
		if id == productID {
			m.lists[session] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	m.persist(ctx, session)
	m.mu.Unlock()
	m.notify(session)
}

func (m *Manager) Contains(ctx context.Context, session, productID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hydrate(ctx, session)
	return contains(m.lists[session], productID)
}

// IDs returns a copy of the session's wishlist in insertion order.
func (m *Manager) IDs(ctx context.Context, session string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hydrate(ctx, session)
	out := make([]string, len(m.lists[session]))
	copy(out, m.lists[session])
	return out
}

func (m *Manager) Count(ctx context.Context, session string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hydrate(ctx, session)
	return len(m.lists[session])
}

func (m *Manager) hydrate(ctx context.Context, session string) {
	if m.loaded[session] {
		return
	}
	ids, err := m.store.Load(ctx, session)
	if err != nil {
		log.Printf("wishlist: load session %s: %v (starting empty)", session, err)
		ids = nil
	}
	m.lists[session] = ids
	m.loaded[session] = true
}

func (m *Manager) persist(ctx context.Context, session string) {
	if err := m.store.Save(ctx, session, m.lists[session]); err != nil {
		log.Printf("wishlist: save session %s: %v (in-memory state kept)", session, err)
	}
}

func (m *Manager) notify(session string) {
	m.mu.Lock()
	subs := make([]func(string), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()
	for _, fn := range subs {
		fn(session)
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
