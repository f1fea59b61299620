package server

import (
	"github.com/gofiber/fiber/v2"
)

// Static informational pages. The frontend renders these titles; the API
// serves the canonical copy so every client shows the same text.

func (s *Server) HomePage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": "Home",
		"body":  "Welcome to Murmur. Sign up now to share short updates and follow other users.",
	})
}

func (s *Server) HelpPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": "Help",
		"body":  "Get help with your Murmur account, posting microposts and following users.",
	})
}

func (s *Server) AboutPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": "About",
		"body":  "Murmur is a microblogging service: short posts, follower relationships and a personal feed.",
	})
}

func (s *Server) ContactPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": "Contact",
		"body":  "Contact the Murmur team via the support address listed on the help page.",
	})
}
