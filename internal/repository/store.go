package repository

import (
	"context"
	"errors"

	"stockroom/internal/cache"
	"stockroom/internal/middleware"
	"stockroom/internal/models"

	"gorm.io/gorm"
)

// StoreRepository defines persistence operations for stores.
type StoreRepository interface {
	Create(ctx context.Context, store *models.Store) error
	GetByName(ctx context.Context, name string) (*models.Store, error)
	GetByID(ctx context.Context, id uint) (*models.Store, error)
}

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository returns a new StoreRepository implementation.
func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(ctx context.Context, store *models.Store) error {
	if err := r.db.WithContext(ctx).Create(store).Error; err != nil {
		if isUniqueConstraintError(err) {
			middleware.ConstraintViolationsTotal.WithLabelValues("store").Inc()
			return models.NewConstraintViolationError("A store with that name already exists", nil)
		}
		return models.NewInternalError(err)
	}
	return nil
}

// GetByName returns the store with its items preloaded, matching the nested
// items in the store response payload.
func (r *storeRepository) GetByName(ctx context.Context, name string) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("name = ?", name).
		First(&store).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Store", name)
		}
		return nil, models.NewInternalError(err)
	}
	return &store, nil
}

// GetByID is the hot lookup on the tag paths, so it goes through the
// cache-aside helper. Stores are immutable after creation in this schema,
// which makes them safe to cache without write invalidation.
func (r *storeRepository) GetByID(ctx context.Context, id uint) (*models.Store, error) {
	var store models.Store
	key := cache.StoreKey(id)

	err := cache.Aside(ctx, key, &store, cache.StoreTTL, func() error {
		if err := r.db.WithContext(ctx).First(&store, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Store", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &store, nil
}
