package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/minta-io/minta/internal/core"
)

// ItemService wraps the item store and maps store errors onto HTTP statuses.
type ItemService struct {
	store core.ItemStore
}

func NewItemService(store core.ItemStore) *ItemService {
	return &ItemService{store: store}
}

func (s *ItemService) Create(ctx context.Context, item core.Item) (core.Item, error) {
	if item.Name == "" {
		return core.Item{}, httpError(http.StatusBadRequest,
			fmt.Errorf("item name is required"))
	}
	created, err := s.store.Create(ctx, item)
	if err != nil {
		return core.Item{}, httpError(http.StatusInternalServerError,
			fmt.Errorf("creating item: %w", err))
	}
	return created, nil
}

func (s *ItemService) Get(ctx context.Context, id int64) (core.Item, error) {
	item, err := s.store.Get(ctx, id)
	if err != nil {
		return core.Item{}, s.storeError("fetching", err)
	}
	return item, nil
}

func (s *ItemService) Update(ctx context.Context, item core.Item) (core.Item, error) {
	if item.Name == "" {
		return core.Item{}, httpError(http.StatusBadRequest,
			fmt.Errorf("item name is required"))
	}
	updated, err := s.store.Update(ctx, item)
	if err != nil {
		return core.Item{}, s.storeError("updating", err)
	}
	return updated, nil
}

func (s *ItemService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return s.storeError("deleting", err)
	}
	return nil
}

func (s *ItemService) List(ctx context.Context) ([]core.Item, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, httpError(http.StatusInternalServerError,
			fmt.Errorf("listing items: %w", err))
	}
	return items, nil
}

func (s *ItemService) storeError(action string, err error) error {
	if errors.Is(err, core.ErrItemNotFound) {
		return httpError(http.StatusNotFound, core.ErrItemNotFound)
	}
	return httpError(http.StatusInternalServerError,
		fmt.Errorf("%s item: %w", action, err))
}
