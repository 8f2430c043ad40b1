package routes

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/gatehouse/gatehouse/internal/middleware"
)

// RegisterProtectedRoutes wires the token-gated resource. The gate runs
// before the handler; an unauthenticated request never reaches it.
func RegisterProtectedRoutes(r fiber.Router, gate fiber.Handler) {
	r.Get("/secure", gate, func(c *fiber.Ctx) error {
		userID := middleware.Principal(c)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"message": fmt.Sprintf("Hello user %s, you accessed the protected resource", userID),
		})
	})
}
