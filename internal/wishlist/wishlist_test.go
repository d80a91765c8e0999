package wishlist

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	m       sync.Mutex
	data    map[string][]string
	loadErr error
	saveErr error
}

func newMemStore() *memStore { return &memStore{data: make(map[string][]string)} }

func (s *memStore) Load(_ context.Context, session string) ([]string, error) {
	s.m.Lock()
	defer s.m.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	out := make([]string, len(s.data[session]))
	copy(out, s.data[session])
	return out, nil
}

func (s *memStore) Save(_ context.Context, session string, ids []string) error {
	s.m.Lock()
	defer s.m.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	cp := make([]string, len(ids))
	copy(cp, ids)
	s.data[session] = cp
	return nil
}

const sid = "session-1"

func TestAddIdempotent(t *testing.T) {
	ctx := context.Background()
	m := NewManager(newMemStore())

	m.Add(ctx, sid, "jollof-rice-chicken")
	m.Add(ctx, sid, "jollof-rice-chicken")

	assert.Equal(t, []string{"jollof-rice-chicken"}, m.IDs(ctx, sid))
	assert.Equal(t, 1, m.Count(ctx, sid))
}

func TestRemoveIdempotent(t *testing.T) {
	ctx := context.Background()
	m := NewManager(newMemStore())
	m.Add(ctx, sid, "a")
	m.Add(ctx, sid, "b")

	m.Remove(ctx, sid, "a")
	m.Remove(ctx, sid, "a")

	assert.Equal(t, []string{"b"}, m.IDs(ctx, sid))
}

func TestContains(t *testing.T) {
	ctx := context.Background()
	m := NewManager(newMemStore())

	assert.False(t, m.Contains(ctx, sid, "a"))
	m.Add(ctx, sid, "a")
	assert.True(t, m.Contains(ctx, sid, "a"))
	m.Remove(ctx, sid, "a")
	assert.False(t, m.Contains(ctx, sid, "a"))
}

func TestInsertionOrderPreserved(t *testing.T) {
	ctx := context.Background()
	m := NewManager(newMemStore())

	m.Add(ctx, sid, "c")
	m.Add(ctx, sid, "a")
	m.Add(ctx, sid, "b")
	m.Add(ctx, sid, "a") // no-op, keeps position

	assert.Equal(t, []string{"c", "a", "b"}, m.IDs(ctx, sid))
}

func TestRoundTripThroughStore(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	m := NewManager(store)
	m.Add(ctx, sid, "a")
	m.Add(ctx, sid, "b")

	m2 := NewManager(store)
	require.Equal(t, []string{"a", "b"}, m2.IDs(ctx, sid))
}

func TestStoreFailuresKeepMemoryAuthoritative(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.saveErr = errors.New("write refused")
	m := NewManager(store)

	m.Add(ctx, sid, "a")
	assert.True(t, m.Contains(ctx, sid, "a"))

	store.loadErr = errors.New("read refused")
	assert.Empty(t, m.IDs(ctx, "session-2"))
}
