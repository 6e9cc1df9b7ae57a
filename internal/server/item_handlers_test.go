package server

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetStore(t *testing.T) {
	app, _ := setupTestServer(t, true)

	resp, body := doJSON(t, app, http.MethodPost, "/api/stores",
		fiber.Map{"name": "Acme"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Acme", body["name"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/stores/Acme", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Acme", body["name"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/stores/ghost", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/stores",
		fiber.Map{"name": "Acme"}, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONSTRAINT_VIOLATION", body["code"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/stores",
		fiber.Map{"name": ""}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestCreateItem(t *testing.T) {
	app, _ := setupTestServer(t, true)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/stores",
		fiber.Map{"name": "Acme"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/items",
		fiber.Map{"name": "Widget", "price": 9.99, "store_id": 1}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Widget", body["name"])
	assert.Equal(t, 9.99, body["price"])
	assert.Equal(t, float64(1), body["store_id"])

	// The item payload nests its owning store.
	resp, body = doJSON(t, app, http.MethodGet, "/api/items/Widget", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	store := body["store"].(map[string]any)
	assert.Equal(t, "Acme", store["name"])
}

func TestCreateItem_Validation(t *testing.T) {
	app, _ := setupTestServer(t, true)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/stores",
		fiber.Map{"name": "Acme"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	tests := []struct {
		name string
		body fiber.Map
	}{
		{"Missing name", fiber.Map{"price": 9.99, "store_id": 1}},
		{"Negative price", fiber.Map{"name": "Widget", "price": -1.0, "store_id": 1}},
		{"Missing store_id", fiber.Map{"name": "Widget", "price": 9.99}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, app, http.MethodPost, "/api/items", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "VALIDATION_ERROR", body["code"])
		})
	}
}

func TestCreateItem_Conflicts(t *testing.T) {
	app, _ := setupTestServer(t, true)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/stores",
		fiber.Map{"name": "Acme"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPost, "/api/items",
		fiber.Map{"name": "Widget", "price": 9.99, "store_id": 1}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Duplicate item name
	resp, body := doJSON(t, app, http.MethodPost, "/api/items",
		fiber.Map{"name": "Widget", "price": 1.50, "store_id": 1}, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONSTRAINT_VIOLATION", body["code"])

	// Unknown store
	resp, body = doJSON(t, app, http.MethodPost, "/api/items",
		fiber.Map{"name": "Gadget", "price": 4.20, "store_id": 999}, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONSTRAINT_VIOLATION", body["code"])
}

func TestDeleteItem_Idempotent(t *testing.T) {
	app, _ := setupTestServer(t, true)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/stores",
		fiber.Map{"name": "Acme"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPost, "/api/items",
		fiber.Map{"name": "Widget", "price": 9.99, "store_id": 1}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodDelete, "/api/items/Widget", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Item deleted", body["message"])

	resp, _ = doJSON(t, app, http.MethodGet, "/api/items/Widget", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Deleting again (or deleting something that never existed) still reports
	// success with the same message.
	resp, body = doJSON(t, app, http.MethodDelete, "/api/items/Widget", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Item deleted", body["message"])
}
