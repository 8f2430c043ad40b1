package identity

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the registration endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs an identity HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type registerRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// RegisterPage renders the registration form.
func (h *Handler) RegisterPage(c *fiber.Ctx) error {
	return c.Render("register", fiber.Map{"Flash": c.Query("flash")})
}

// Register handles account creation. Failures re-prompt the registration
// form with a flash message; success redirects to the login form.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return redirectWithFlash(c, "/register", "Please fill out all fields.")
	}

	_, err := h.service.Register(c.UserContext(), Credentials{Username: req.Username, Password: req.Password})
	switch {
	case errors.Is(err, ErrMissingCredentials):
		return redirectWithFlash(c, "/register", "Please fill out all fields.")
	case errors.Is(err, ErrUsernameTaken):
		return redirectWithFlash(c, "/register", "Username already exists.")
	case err != nil:
		return fiber.NewError(http.StatusInternalServerError, "registration failed")
	}

	return redirectWithFlash(c, "/login", "Registration successful! You can now log in.")
}

func redirectWithFlash(c *fiber.Ctx, path, message string) error {
	return c.Redirect(path+"?flash="+url.QueryEscape(message), http.StatusFound)
}
