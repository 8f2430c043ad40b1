package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gatehouse/gatehouse/internal/auth"
)

// PrincipalKey is the request-locals key holding the authenticated user id.
const PrincipalKey = "user_id"

// RequireAuth returns a middleware that admits only requests presenting a
// valid bearer token. The wrapped handler never runs on a missing or failed
// token. Verification is signature/expiry only; the store is not consulted.
func RequireAuth(issuer *auth.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
		}
		tokenStr := strings.TrimSpace(authz[len("Bearer "):])
		userID, err := issuer.Verify(tokenStr)
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(PrincipalKey, userID)
		return c.Next()
	}
}

// Principal returns the authenticated user id set by RequireAuth, or the
// empty string on an unauthenticated request.
func Principal(c *fiber.Ctx) string {
	userID, _ := c.Locals(PrincipalKey).(string)
	return userID
}
