package server

import (
	"murmur/internal/models"
	"murmur/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreateMicropost handles POST /api/microposts
func (s *Server) CreateMicropost(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	userID := c.Locals("userID").(uint)

	post, err := s.micropostService.Publish(c.Context(), validation.MicropostInput{
		UserID:  userID,
		Content: req.Content,
	})
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"micropost": post,
	})
}

// DeleteMicropost handles DELETE /api/microposts/:id
func (s *Server) DeleteMicropost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := c.Locals("userID").(uint)

	admin, err := s.isAdmin(c, userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	if err := s.micropostService.Delete(c.Context(), userID, admin, id); err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Micropost deleted",
	})
}

// GetFeed handles GET /api/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	p := parsePagination(c, 30)

	posts, err := s.feedService.Feed(c.Context(), userID, p.Limit, p.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(fiber.Map{
		"microposts": posts,
		"limit":      p.Limit,
		"offset":     p.Offset,
	})
}
