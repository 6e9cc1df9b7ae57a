package server

import (
	"stockroom/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListStoreTags handles GET /api/stores/:id/tags
func (s *Server) ListStoreTags(c *fiber.Ctx) error {
	storeID, err := s.parseID(c, "id", "store ID")
	if err != nil {
		return nil
	}

	tags, err := s.tagService.ListForStore(c.Context(), storeID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(tags)
}

// CreateStoreTag handles POST /api/stores/:id/tags
func (s *Server) CreateStoreTag(c *fiber.Ctx) error {
	storeID, err := s.parseID(c, "id", "store ID")
	if err != nil {
		return nil
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Tag name is required"))
	}

	tag, err := s.tagService.CreateForStore(c.Context(), storeID, req.Name)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(tag)
}

// GetTag handles GET /api/tags/:id
func (s *Server) GetTag(c *fiber.Ctx) error {
	tagID, err := s.parseID(c, "id", "tag ID")
	if err != nil {
		return nil
	}

	tag, err := s.tagService.Get(c.Context(), tagID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(tag)
}

// DeleteTag handles DELETE /api/tags/:id. Unlike item deletion this 404s on
// an absent tag, and rejects with 400 TAG_IN_USE while items are linked.
func (s *Server) DeleteTag(c *fiber.Ctx) error {
	tagID, err := s.parseID(c, "id", "tag ID")
	if err != nil {
		return nil
	}

	if err := s.tagService.Delete(c.Context(), tagID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Tag deleted",
	})
}

// LinkTag handles POST /api/items/:id/tags/:tagId
func (s *Server) LinkTag(c *fiber.Ctx) error {
	itemID, err := s.parseID(c, "id", "item ID")
	if err != nil {
		return nil
	}
	tagID, err := s.parseID(c, "tagId", "tag ID")
	if err != nil {
		return nil
	}

	if err := s.tagService.Link(c.Context(), itemID, tagID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Tag linked to item",
	})
}

// UnlinkTag handles DELETE /api/items/:id/tags/:tagId
func (s *Server) UnlinkTag(c *fiber.Ctx) error {
	itemID, err := s.parseID(c, "id", "item ID")
	if err != nil {
		return nil
	}
	tagID, err := s.parseID(c, "tagId", "tag ID")
	if err != nil {
		return nil
	}

	if err := s.tagService.Unlink(c.Context(), itemID, tagID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Tag unlinked from item",
	})
}
