package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/gatehouse/gatehouse/internal/identity"
)

// Handler exposes the login endpoints.
type Handler struct {
	svc *Service
}

// NewHandler constructs an auth HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// loginRequest accepts both JSON and form-encoded bodies; BodyParser
// dispatches on the request content type.
type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginPage renders the login form.
func (h *Handler) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{"Flash": c.Query("flash")})
}

// Login validates credentials and returns an access token. Every credential
// failure gets the same message and status, never hinting whether the
// username exists.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return unauthorized(c)
	}

	resp, err := h.svc.Login(c.UserContext(), identity.Credentials{Username: req.Username, Password: req.Password})
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return unauthorized(c)
		}
		return fiber.NewError(http.StatusInternalServerError, "login failed")
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid username or password"})
}
