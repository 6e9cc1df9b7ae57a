package repository

import (
	"context"
	"errors"

	"stockroom/internal/middleware"
	"stockroom/internal/models"

	"gorm.io/gorm"
)

// ItemRepository defines persistence operations for items.
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByName(ctx context.Context, name string) (*models.Item, error)
	GetByID(ctx context.Context, id uint) (*models.Item, error)
	DeleteByName(ctx context.Context, name string) error
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository returns a new ItemRepository implementation.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

// Create persists a new item. Uniqueness of the name and existence of the
// owning store are both checked by the database atomically with the insert,
// so there is no check-then-insert window under concurrent requests.
func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		switch {
		case isUniqueConstraintError(err):
			middleware.ConstraintViolationsTotal.WithLabelValues("item").Inc()
			return models.NewConstraintViolationError("An item with that name already exists", nil)
		case isForeignKeyError(err):
			middleware.ConstraintViolationsTotal.WithLabelValues("item").Inc()
			return models.NewConstraintViolationError("Referenced store does not exist", nil)
		default:
			return models.NewInternalError(err)
		}
	}
	return nil
}

func (r *itemRepository) GetByName(ctx context.Context, name string) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).
		Preload("Store").
		Preload("Tags").
		Where("name = ?", name).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Item", name)
		}
		return nil, models.NewInternalError(err)
	}
	return &item, nil
}

func (r *itemRepository) GetByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Item", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &item, nil
}

// DeleteByName removes the item and its association rows. Deleting an absent
// item is a successful no-op; the original API always reports deletion.
func (r *itemRepository) DeleteByName(ctx context.Context, name string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.Where("name = ?", name).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Where("item_id = ?", item.ID).Delete(&models.ItemTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
