package routes

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterPageRoutes wires the unauthenticated page renders.
func RegisterPageRoutes(r fiber.Router) {
	r.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{})
	})
	r.Get("/protected", func(c *fiber.Ctx) error {
		return c.Render("protected", fiber.Map{})
	})
}
