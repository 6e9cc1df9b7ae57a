package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedCatalog creates one store with one item over the API and returns the app.
func seedCatalog(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	app, db := setupTestServer(t, true)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/stores",
		fiber.Map{"name": "Acme"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPost, "/api/items",
		fiber.Map{"name": "Widget", "price": 9.99, "store_id": 1}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return app, db
}

// listTags fetches and decodes the tag list for a store.
func listTags(t *testing.T, app *fiber.App, path string) []map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var tags []map[string]any
	require.NoError(t, json.Unmarshal(raw, &tags))
	return tags
}

func TestStoreTags_ListAndCreate(t *testing.T) {
	app, _ := seedCatalog(t)

	// Listing or creating under an absent store is a 404.
	resp, body := doJSON(t, app, http.MethodGet, "/api/stores/999/tags", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/stores/999/tags",
		fiber.Map{"name": "sale"}, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])

	assert.Empty(t, listTags(t, app, "/api/stores/1/tags"))

	resp, body = doJSON(t, app, http.MethodPost, "/api/stores/1/tags",
		fiber.Map{"name": "sale"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "sale", body["name"])
	assert.Equal(t, float64(1), body["store_id"])

	// Tag names are not unique; the same name may be created twice.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/stores/1/tags",
		fiber.Map{"name": "sale"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.Len(t, listTags(t, app, "/api/stores/1/tags"), 2)

	resp, body = doJSON(t, app, http.MethodPost, "/api/stores/1/tags",
		fiber.Map{"name": ""}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestGetTag(t *testing.T) {
	app, _ := seedCatalog(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/stores/1/tags",
		fiber.Map{"name": "sale"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// The tag payload nests its owning store.
	resp, body := doJSON(t, app, http.MethodGet, "/api/tags/1", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "sale", body["name"])
	store := body["store"].(map[string]any)
	assert.Equal(t, "Acme", store["name"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/tags/999", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/tags/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestLinkAndUnlinkTag(t *testing.T) {
	app, db := seedCatalog(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/stores/1/tags",
		fiber.Map{"name": "sale"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Both sides must exist.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/items/999/tags/1", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPost, "/api/items/1/tags/999", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Linking twice leaves exactly one association row.
	resp, body := doJSON(t, app, http.MethodPost, "/api/items/1/tags/1", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Tag linked to item", body["message"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/items/1/tags/1", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Tag linked to item", body["message"])

	assert.Equal(t, int64(1), countLinks(t, db))

	// Unlinking is equally idempotent.
	resp, body = doJSON(t, app, http.MethodDelete, "/api/items/1/tags/1", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Tag unlinked from item", body["message"])

	resp, body = doJSON(t, app, http.MethodDelete, "/api/items/1/tags/1", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Tag unlinked from item", body["message"])

	assert.Zero(t, countLinks(t, db))
}

func TestDeleteTag(t *testing.T) {
	app, _ := seedCatalog(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/stores/1/tags",
		fiber.Map{"name": "sale"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPost, "/api/items/1/tags/1", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// A linked tag cannot be deleted.
	resp, body := doJSON(t, app, http.MethodDelete, "/api/tags/1", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "TAG_IN_USE", body["code"])

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/items/1/tags/1", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodDelete, "/api/tags/1", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Tag deleted", body["message"])

	// Unlike item deletion, deleting an absent tag is a 404.
	resp, body = doJSON(t, app, http.MethodDelete, "/api/tags/1", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}
