package server

import (
	"stockroom/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateItem handles POST /api/items
func (s *Server) CreateItem(c *fiber.Ctx) error {
	var req struct {
		Name    string  `json:"name"`
		Price   float64 `json:"price"`
		StoreID uint    `json:"store_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Item name is required"))
	}
	if req.Price < 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Price must not be negative"))
	}
	if req.StoreID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("store_id is required"))
	}

	item := &models.Item{Name: req.Name, Price: req.Price, StoreID: req.StoreID}
	if err := s.itemService.Create(c.Context(), item); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// GetItem handles GET /api/items/:name and returns the item with its store nested.
func (s *Server) GetItem(c *fiber.Ctx) error {
	name := c.Params("name")

	item, err := s.itemService.GetByName(c.Context(), name)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(item)
}

// DeleteItem handles DELETE /api/items/:name. The delete is idempotent: the
// response is 200 with a deletion message whether or not the item existed.
// DeleteTag deliberately behaves differently and 404s on an absent tag.
func (s *Server) DeleteItem(c *fiber.Ctx) error {
	name := c.Params("name")

	if err := s.itemService.DeleteByName(c.Context(), name); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Item deleted",
	})
}
