package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gatehouse/gatehouse/internal/identity"
)

// RegisterIdentityRoutes wires the registration endpoints.
func RegisterIdentityRoutes(r fiber.Router, h *identity.Handler) {
	r.Get("/register", h.RegisterPage)
	r.Post("/register", h.Register)
}
