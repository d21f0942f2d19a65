package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/timesheet-service/internal/api/http/handlers"
	"github.com/spec-kit/timesheet-service/internal/auth"
	"github.com/spec-kit/timesheet-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Timesheets     *handlers.TimesheetsHandler
	Users          *handlers.UsersHandler
	Auth           *handlers.AuthHandler
	AuthMiddleware *auth.AuthMiddleware
	LoginLimiter   fiber.Handler
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))

	authGroup := app.Group("/api/auth")
	authGroup.Post("/login", cfg.LoginLimiter, cfg.Auth.Login)
	authGroup.Post("/change-password", cfg.Auth.ChangePassword)

	entries := app.Group("/api/timesheet-entries", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	entries.Get("/", cfg.Timesheets.List)
	entries.Post("/", cfg.Timesheets.Create)
	entries.Get("/employeename", cfg.Timesheets.FindByName)
	entries.Get("/filter", cfg.Timesheets.Filter)
	entries.Get("/export", cfg.Timesheets.Export)
	entries.Get("/:id", cfg.Timesheets.Get)
	entries.Put("/:id", cfg.Timesheets.Update)
	entries.Delete("/:id", cfg.Timesheets.Delete)

	adminOnly := auth.RequireRole("admin")
	entries.Put("/:id/approve", adminOnly, cfg.Timesheets.Approve)
	entries.Put("/:id/reject", adminOnly, cfg.Timesheets.Reject)
	entries.Put("/:id/status", adminOnly, cfg.Timesheets.UpdateStatus)

	users := app.Group("/api/users", cfg.AuthMiddleware.Handle, adminOnly)
	users.Post("/", cfg.Users.Create)
	users.Get("/", cfg.Users.List)
}
