package service

import (
	"context"

	"stockroom/internal/cache"
	"stockroom/internal/models"
	"stockroom/internal/repository"
)

// ItemService layers the item cache over the repository. Item payloads nest
// the owning store and linked tags, so every write that changes the payload
// drops the cached entry.
type ItemService struct {
	items repository.ItemRepository
}

// NewItemService returns a new ItemService.
func NewItemService(items repository.ItemRepository) *ItemService {
	return &ItemService{items: items}
}

func (s *ItemService) Create(ctx context.Context, item *models.Item) error {
	return s.items.Create(ctx, item)
}

// GetByName serves the item with its nested store and tags through the
// cache-aside helper. Lookup failures are never cached.
func (s *ItemService) GetByName(ctx context.Context, name string) (*models.Item, error) {
	var item models.Item
	err := cache.Aside(ctx, cache.ItemKey(name), &item, cache.ItemTTL, func() error {
		fetched, err := s.items.GetByName(ctx, name)
		if err != nil {
			return err
		}
		item = *fetched
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteByName removes the item (a no-op when absent) and drops its cached
// payload so a follow-up lookup cannot resurrect it.
func (s *ItemService) DeleteByName(ctx context.Context, name string) error {
	if err := s.items.DeleteByName(ctx, name); err != nil {
		return err
	}
	cache.InvalidateItem(ctx, name)
	return nil
}
