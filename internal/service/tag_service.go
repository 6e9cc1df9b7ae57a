package service

import (
	"context"

	"stockroom/internal/cache"
	"stockroom/internal/models"
	"stockroom/internal/repository"
)

// TagService enforces the tag rules: store existence on list/create, the
// linked-items guard on delete, and existence of both sides on link/unlink.
type TagService struct {
	tags   repository.TagRepository
	stores repository.StoreRepository
	items  repository.ItemRepository
}

// NewTagService returns a new TagService.
func NewTagService(tags repository.TagRepository, stores repository.StoreRepository, items repository.ItemRepository) *TagService {
	return &TagService{tags: tags, stores: stores, items: items}
}

// ListForStore fails with NOT_FOUND when the store is absent; an existing
// store with no tags yields an empty list.
func (s *TagService) ListForStore(ctx context.Context, storeID uint) ([]models.Tag, error) {
	if _, err := s.stores.GetByID(ctx, storeID); err != nil {
		return nil, err
	}
	return s.tags.ListByStore(ctx, storeID)
}

// CreateForStore creates a tag under the store. Tag names carry no uniqueness
// constraint, so creation always succeeds once the store is known to exist.
func (s *TagService) CreateForStore(ctx context.Context, storeID uint, name string) (*models.Tag, error) {
	if _, err := s.stores.GetByID(ctx, storeID); err != nil {
		return nil, err
	}
	tag := &models.Tag{Name: name, StoreID: storeID}
	if err := s.tags.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) Get(ctx context.Context, tagID uint) (*models.Tag, error) {
	return s.tags.GetByID(ctx, tagID)
}

// Delete removes the tag. NOT_FOUND when the tag is absent; TAG_IN_USE while
// at least one item is still linked.
func (s *TagService) Delete(ctx context.Context, tagID uint) error {
	if _, err := s.tags.GetByID(ctx, tagID); err != nil {
		return err
	}
	return s.tags.Delete(ctx, tagID)
}

// Link associates the tag with the item. Both sides must exist; linking an
// already-linked pair succeeds without mutation. The item's cached payload
// nests its tags and is dropped on success.
func (s *TagService) Link(ctx context.Context, itemID, tagID uint) error {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if _, err := s.tags.GetByID(ctx, tagID); err != nil {
		return err
	}
	if err := s.tags.Link(ctx, itemID, tagID); err != nil {
		return err
	}
	cache.InvalidateItem(ctx, item.Name)
	return nil
}

// Unlink removes the association. Both sides must exist; unlinking a pair
// that is not linked succeeds without mutation.
func (s *TagService) Unlink(ctx context.Context, itemID, tagID uint) error {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if _, err := s.tags.GetByID(ctx, tagID); err != nil {
		return err
	}
	if err := s.tags.Unlink(ctx, itemID, tagID); err != nil {
		return err
	}
	cache.InvalidateItem(ctx, item.Name)
	return nil
}
