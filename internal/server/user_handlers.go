package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetAllUsers handles GET /api/users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	p := parsePagination(c, 30)

	users, err := s.userService.ListUsers(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}

	total, err := s.userRepo.Count(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(fiber.Map{
		"users":  users,
		"total":  total,
		"limit":  p.Limit,
		"offset": p.Offset,
	})
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}

	following, followers, err := s.relService.Counts(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}

	postCount, err := s.micropostService.CountByUser(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(fiber.Map{
		"user":            user,
		"micropost_count": postCount,
		"following_count": following,
		"followers_count": followers,
	})
}

// GetUserMicroposts handles GET /api/users/:id/microposts
func (s *Server) GetUserMicroposts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	p := parsePagination(c, 30)

	if _, err := s.userService.GetUserByID(c.Context(), id); err != nil {
		return respondDomainError(c, err)
	}

	posts, err := s.micropostService.ListByUser(c.Context(), id, p.Limit, p.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}

	total, err := s.micropostService.CountByUser(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(fiber.Map{
		"microposts": posts,
		"total":      total,
		"limit":      p.Limit,
		"offset":     p.Offset,
	})
}

// ToggleAdmin handles POST /api/users/:id/toggle-admin
func (s *Server) ToggleAdmin(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}

	updated, err := s.userService.SetAdmin(c.Context(), id, !user.Admin)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(fiber.Map{
		"user": updated,
	})
}

// DeleteUser handles DELETE /api/users/:id. Admin-only; removing a user takes
// their microposts and relationship edges with them.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	actorID := c.Locals("userID").(uint)

	if err := s.userService.Destroy(c.Context(), actorID, id); err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "User deleted",
	})
}
