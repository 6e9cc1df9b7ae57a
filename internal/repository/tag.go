package repository

import (
	"context"
	"errors"

	"stockroom/internal/middleware"
	"stockroom/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagRepository defines persistence operations for tags and the item-tag
// association.
type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	GetByID(ctx context.Context, id uint) (*models.Tag, error)
	ListByStore(ctx context.Context, storeID uint) ([]models.Tag, error)
	// Delete removes the tag unless it still has linked items, in which case
	// it fails with a TAG_IN_USE error. The check and the delete run in one
	// transaction.
	Delete(ctx context.Context, id uint) error
	Link(ctx context.Context, itemID, tagID uint) error
	Unlink(ctx context.Context, itemID, tagID uint) error
	CountItems(ctx context.Context, tagID uint) (int64, error)
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository returns a new TagRepository implementation.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		if isForeignKeyError(err) {
			middleware.ConstraintViolationsTotal.WithLabelValues("tag").Inc()
			return models.NewConstraintViolationError("Referenced store does not exist", nil)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *tagRepository) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).
		Preload("Store").
		First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Tag", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &tag, nil
}

func (r *tagRepository) ListByStore(ctx context.Context, storeID uint) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Find(&tags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}

func (r *tagRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var linked int64
		if err := tx.Model(&models.ItemTag{}).
			Where("tag_id = ?", id).
			Count(&linked).Error; err != nil {
			return err
		}
		if linked > 0 {
			return models.NewTagInUseError(id)
		}
		return tx.Delete(&models.Tag{}, id).Error
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return models.NewInternalError(err)
	}
	return nil
}

// Link inserts the association row. The do-nothing conflict clause makes the
// operation idempotent and race-free: two identical concurrent requests both
// succeed and exactly one row exists afterwards.
func (r *tagRepository) Link(ctx context.Context, itemID, tagID uint) error {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.ItemTag{ItemID: itemID, TagID: tagID})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	outcome := "created"
	if res.RowsAffected == 0 {
		outcome = "noop"
	}
	middleware.TagLinksTotal.WithLabelValues("link", outcome).Inc()
	return nil
}

// Unlink removes the association row. Removing a pair that was never linked
// is a successful no-op.
func (r *tagRepository) Unlink(ctx context.Context, itemID, tagID uint) error {
	res := r.db.WithContext(ctx).
		Where("item_id = ? AND tag_id = ?", itemID, tagID).
		Delete(&models.ItemTag{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	outcome := "deleted"
	if res.RowsAffected == 0 {
		outcome = "noop"
	}
	middleware.TagLinksTotal.WithLabelValues("unlink", outcome).Inc()
	return nil
}

func (r *tagRepository) CountItems(ctx context.Context, tagID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ItemTag{}).
		Where("tag_id = ?", tagID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
