package server

import (
	"stockroom/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateStore handles POST /api/stores
func (s *Server) CreateStore(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Store name is required"))
	}

	store := &models.Store{Name: req.Name}
	if err := s.storeRepo.Create(c.Context(), store); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(store)
}

// GetStore handles GET /api/stores/:name and returns the store with its items.
func (s *Server) GetStore(c *fiber.Ctx) error {
	name := c.Params("name")

	store, err := s.storeRepo.GetByName(c.Context(), name)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(store)
}
