package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	followedID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	followerID := c.Locals("userID").(uint)

	if err := s.relService.Follow(c.Context(), followerID, followedID); err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(fiber.Map{
		"following": true,
	})
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	followedID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	followerID := c.Locals("userID").(uint)

	if err := s.relService.Unfollow(c.Context(), followerID, followedID); err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(fiber.Map{
		"following": false,
	})
}

// GetFollowingStatus handles GET /api/users/:id/following/status.
// Reports whether the authenticated user follows :id.
func (s *Server) GetFollowingStatus(c *fiber.Ctx) error {
	followedID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	followerID := c.Locals("userID").(uint)

	following, err := s.relService.IsFollowing(c.Context(), followerID, followedID)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(fiber.Map{
		"following": following,
	})
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	users, err := s.relService.Following(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(fiber.Map{
		"users": users,
		"count": len(users),
	})
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	users, err := s.relService.Followers(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(fiber.Map{
		"users": users,
		"count": len(users),
	})
}
