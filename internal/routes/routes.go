package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gatehouse/gatehouse/internal/auth"
	"github.com/gatehouse/gatehouse/internal/config"
	"github.com/gatehouse/gatehouse/internal/identity"
	"github.com/gatehouse/gatehouse/internal/middleware"
)

// Deps aggregates shared dependencies required to wire routes. The
// repository is constructed by the caller; nothing in here reaches for
// globals.
type Deps struct {
	Cfg    config.Config
	Repo   identity.Repository
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	if d.Logger != nil {
		app.Use(middleware.Audit(d.Logger))
	}

	RegisterHealthRoutes(app, d)

	// Services and handlers, constructed once and injected.
	identitySvc := identity.NewService(d.Repo)
	issuer := auth.NewIssuer([]byte(d.Cfg.JWTSecret), d.Cfg.TokenTTL)
	authSvc := auth.NewService(identitySvc, issuer)

	identityHandler := identity.NewHandler(identitySvc)
	authHandler := auth.NewHandler(authSvc)

	RegisterPageRoutes(app)
	RegisterIdentityRoutes(app, identityHandler)
	RegisterAuthRoutes(app, authHandler)
	RegisterProtectedRoutes(app, middleware.RequireAuth(issuer))

	return nil
}
