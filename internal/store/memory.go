package store

import (
	"context"
	"sort"
	"sync"

	"github.com/minta-io/minta/internal/core"
)

var _ core.ItemStore = (*InMemoryItemStore)(nil)

// InMemoryItemStore keeps items in process memory.
// Used for tests and local development without a database.
type InMemoryItemStore struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]core.Item
}

func NewInMemoryItemStore() *InMemoryItemStore {
	return &InMemoryItemStore{
		nextID: 1,
		items:  make(map[int64]core.Item),
	}
}

func (s *InMemoryItemStore) Create(_ context.Context, item core.Item) (core.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.nextID
	s.nextID++
	s.items[item.ID] = item
	return item, nil
}

func (s *InMemoryItemStore) Get(_ context.Context, id int64) (core.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return core.Item{}, core.ErrItemNotFound
	}
	return item, nil
}

func (s *InMemoryItemStore) Update(_ context.Context, item core.Item) (core.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item.ID]; !ok {
		return core.Item{}, core.ErrItemNotFound
	}
	s.items[item.ID] = item
	return item, nil
}

func (s *InMemoryItemStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return core.ErrItemNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *InMemoryItemStore) List(_ context.Context) ([]core.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]core.Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}
