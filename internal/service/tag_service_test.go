package service

import (
	"context"
	"testing"

	"stockroom/internal/models"
	"stockroom/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTagService(t *testing.T) (*TagService, *gorm.DB) {
	t.Helper()
	db := setupServiceDB(t)
	svc := NewTagService(
		repository.NewTagRepository(db),
		repository.NewStoreRepository(db),
		repository.NewItemRepository(db),
	)
	return svc, db
}

func seedStoreWithItem(t *testing.T, db *gorm.DB) (*models.Store, *models.Item) {
	t.Helper()
	store := &models.Store{Name: "Acme"}
	require.NoError(t, db.Create(store).Error)
	item := &models.Item{Name: "Widget", Price: 9.99, StoreID: store.ID}
	require.NoError(t, db.Create(item).Error)
	return store, item
}

func TestTagService_ListForStore(t *testing.T) {
	svc, db := setupTagService(t)
	ctx := context.Background()

	_, err := svc.ListForStore(ctx, 999)
	requireAppErrorCode(t, err, "NOT_FOUND")

	store, _ := seedStoreWithItem(t, db)

	tags, err := svc.ListForStore(ctx, store.ID)
	require.NoError(t, err)
	assert.Empty(t, tags)

	_, err = svc.CreateForStore(ctx, store.ID, "sale")
	require.NoError(t, err)

	tags, err = svc.ListForStore(ctx, store.ID)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
	assert.Equal(t, "sale", tags[0].Name)
}

func TestTagService_CreateForStore(t *testing.T) {
	svc, db := setupTagService(t)
	ctx := context.Background()

	_, err := svc.CreateForStore(ctx, 999, "sale")
	requireAppErrorCode(t, err, "NOT_FOUND")

	store, _ := seedStoreWithItem(t, db)

	tag, err := svc.CreateForStore(ctx, store.ID, "sale")
	require.NoError(t, err)
	assert.NotZero(t, tag.ID)
	assert.Equal(t, store.ID, tag.StoreID)

	// Tag names carry no uniqueness rule.
	again, err := svc.CreateForStore(ctx, store.ID, "sale")
	require.NoError(t, err)
	assert.NotEqual(t, tag.ID, again.ID)
}

func TestTagService_LinkAndUnlink(t *testing.T) {
	svc, db := setupTagService(t)
	ctx := context.Background()

	store, item := seedStoreWithItem(t, db)
	tag, err := svc.CreateForStore(ctx, store.ID, "sale")
	require.NoError(t, err)

	// Both sides must exist before any association is touched.
	requireAppErrorCode(t, svc.Link(ctx, 999, tag.ID), "NOT_FOUND")
	requireAppErrorCode(t, svc.Link(ctx, item.ID, 999), "NOT_FOUND")
	requireAppErrorCode(t, svc.Unlink(ctx, 999, tag.ID), "NOT_FOUND")
	requireAppErrorCode(t, svc.Unlink(ctx, item.ID, 999), "NOT_FOUND")

	require.NoError(t, svc.Link(ctx, item.ID, tag.ID))
	require.NoError(t, svc.Link(ctx, item.ID, tag.ID))

	var links int64
	require.NoError(t, db.Model(&models.ItemTag{}).Count(&links).Error)
	assert.Equal(t, int64(1), links)

	require.NoError(t, svc.Unlink(ctx, item.ID, tag.ID))
	require.NoError(t, svc.Unlink(ctx, item.ID, tag.ID))

	require.NoError(t, db.Model(&models.ItemTag{}).Count(&links).Error)
	assert.Zero(t, links)
}

func TestTagService_Delete(t *testing.T) {
	svc, db := setupTagService(t)
	ctx := context.Background()

	requireAppErrorCode(t, svc.Delete(ctx, 999), "NOT_FOUND")

	store, item := seedStoreWithItem(t, db)
	tag, err := svc.CreateForStore(ctx, store.ID, "sale")
	require.NoError(t, err)

	require.NoError(t, svc.Link(ctx, item.ID, tag.ID))
	requireAppErrorCode(t, svc.Delete(ctx, tag.ID), "TAG_IN_USE")

	require.NoError(t, svc.Unlink(ctx, item.ID, tag.ID))
	require.NoError(t, svc.Delete(ctx, tag.ID))

	_, err = svc.Get(ctx, tag.ID)
	requireAppErrorCode(t, err, "NOT_FOUND")
}
