package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gatehouse/gatehouse/internal/auth"
)

// RegisterAuthRoutes wires the login endpoints.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler) {
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.Login)
}
