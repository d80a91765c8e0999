// Package cart owns per-session cart state: an insertion-ordered list of
// lines plus panel visibility, written through to a key-value store after
// every mutation. The in-memory copy is authoritative for the session;
// store failures are logged and otherwise ignored.
package cart

import (
	"context"
	"log"
	"sync"
)

// Line is one product-and-quantity pair. The product fields are a snapshot
// taken when the product was added.
type Line struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	ImageURL  string `json:"imageUrl"`
	Quantity  int    `json:"quantity"`
}

// Store persists the full line list per session. Load must report a missing
// or unparseable entry as an empty cart, not an error.
type Store interface {
	Load(ctx context.Context, session string) ([]Line, error)
	Save(ctx context.Context, session string, lines []Line) error
}

type Manager struct {
	mu     sync.Mutex
	store  Store
	carts  map[string][]Line
	open   map[string]bool
	loaded map[string]bool
	subs   []func(session string)
}

func NewManager(store Store) *Manager {
	return &Manager{
		store:  store,
		carts:  make(map[string][]Line),
		open:   make(map[string]bool),
		loaded: make(map[string]bool),
	}
}

// Subscribe registers a callback invoked after every cart mutation, with the
// session whose cart changed. Callbacks run outside the manager lock.
func (m *Manager) Subscribe(fn func(session string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// AddLine appends l as a new line, or accumulates its quantity onto the
// existing line for the same product, preserving position. Lines with a
// non-positive quantity are rejected.
func (m *Manager) AddLine(ctx context.Context, session string, l Line) {
	if l.Quantity < 1 {
		return
	}
	m.mu.Lock()
	m.hydrate(ctx, session)
	found := false
	for i := range m.carts[session] {
		if m.carts[session][i].ProductID == l.ProductID {
			m.carts[session][i].Quantity += l.Quantity
			found = true
			break
		}
	}
	if !found {
		m.carts[session] = append(m.carts[session], l)
	}
	m.persist(ctx, session)
	m.mu.Unlock()
	m.notify(session)
}

// RemoveLine deletes the line for productID if present. Idempotent.
func (m *Manager) RemoveLine(ctx context.Context, session, productID string) {
	m.mu.Lock()
	m.hydrate(ctx, session)
	lines := m.carts[session]
	for i, l := range lines {
		if l.ProductID == productID {
			m.carts[session] = append(lines[:i], lines[i+1:]...)
			break
		}
	}
	m.persist(ctx, session)
	m.mu.Unlock()
	m.notify(session)
}

// SetQuantity replaces the quantity of an existing line. A quantity of zero
// or less removes the line. A product not in the cart is left alone; this
// never inserts.
func (m *Manager) SetQuantity(ctx context.Context, session, productID string, qty int) {
	if qty <= 0 {
		m.RemoveLine(ctx, session, productID)
		return
	}
	m.mu.Lock()
	m.hydrate(ctx, session)
	for i := range m.carts[session] {
		if m.carts[session][i].ProductID == productID {
			m.carts[session][i].Quantity = qty
			break
		}
	}
	m.persist(ctx, session)
	m.mu.Unlock()
	m.notify(session)
}

func (m *Manager) Clear(ctx context.Context, session string) {
	m.mu.Lock()
	m.hydrate(ctx, session)
	m.carts[session] = nil
	m.persist(ctx, session)
	m.mu.Unlock()
	m.notify(session)
}

// Lines returns a copy of the session's cart in insertion order.
func (m *Manager) Lines(ctx context.Context, session string) []Line {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hydrate(ctx, session)
	out := make([]Line, len(m.carts[session]))
	copy(out, m.carts[session])
	return out
}

// Total is recomputed on every call from the current lines.
func (m *Manager) Total(ctx context.Context, session string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hydrate(ctx, session)
	total := 0
	for _, l := range m.carts[session] {
		total += l.Price * l.Quantity
	}
	return total
}

// Count is the number of units across all lines (the badge count).
func (m *Manager) Count(ctx context.Context, session string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hydrate(ctx, session)
	n := 0
	for _, l := range m.carts[session] {
		n += l.Quantity
	}
	return n
}

// ToggleOpen flips panel visibility and returns the new state. Pure UI
// state, never persisted.
func (m *Manager) ToggleOpen(session string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open[session] = !m.open[session]
	return m.open[session]
}

func (m *Manager) SetOpen(session string, open bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open[session] = open
}

func (m *Manager) IsOpen(session string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open[session]
}

// hydrate lazily loads the persisted cart the first time a session is seen.
// Callers hold the lock.
func (m *Manager) hydrate(ctx context.Context, session string) {
	if m.loaded[session] {
		return
	}
	lines, err := m.store.Load(ctx, session)
	if err != nil {
		log.Printf("cart: load session %s: %v (starting empty)", session, err)
		lines = nil
	}
	m.carts[session] = lines
	m.loaded[session] = true
}

// persist writes through after a mutation, best effort. Callers hold the lock.
func (m *Manager) persist(ctx context.Context, session string) {
	if err := m.store.Save(ctx, session, m.carts[session]); err != nil {
		log.Printf("cart: save session %s: %v (in-memory state kept)", session, err)
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
