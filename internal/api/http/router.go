package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/travel-api/internal/api/http/handlers"
	"github.com/spec-kit/travel-api/internal/auth"
	"github.com/spec-kit/travel-api/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Users           *handlers.UsersHandler
	Admin           *handlers.AdminHandler
	Destinations    *handlers.DestinationsHandler
	Reviews         *handlers.ReviewsHandler
	Tickets         *handlers.TicketsHandler
	Recommendations *handlers.RecommendationHandler
	AuthMiddleware  *auth.Middleware
	CacheMiddleware fiber.Handler
	CacheInvalidate fiber.Handler
}

func passthrough(c *fiber.Ctx) error {
	return c.Next()
}

// RegisterRoutes wires HTTP routes. Paths mirror the public API surface.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	authenticated := cfg.AuthMiddleware.Require(auth.Policy{})
	adminOnly := cfg.AuthMiddleware.Require(auth.Policy{RequireRole: domain.RoleAdmin})

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/admin/create", cfg.Admin.Create)
	app.Post("/admin/login", cfg.Admin.Login)
	app.Post("/admin/check-email", cfg.Admin.CheckEmail)
	app.Post("/admin/reset-password", cfg.Admin.ResetPassword)

	app.Post("/users/register", cfg.Users.Register)
	app.Post("/users/login", cfg.Users.Login)
	app.Post("/users/google-login", cfg.Users.GoogleLogin)
	app.Post("/users/check-email", cfg.Users.CheckEmail)
	app.Post("/users/reset-password", cfg.Users.ResetPassword)
	app.Get("/users", adminOnly, cfg.Users.List)
	app.Get("/user/:id", adminOnly, cfg.Users.Get)
	app.Put("/users/:id", adminOnly, cfg.Users.Update)
	app.Delete("/users/:id", adminOnly, cfg.Users.Delete)

	// The cache sits behind the policy middleware: a cached payload must
	// never answer a request the token check would have rejected.
	cached := cfg.CacheMiddleware
	if cached == nil {
		cached = passthrough
	}
	invalidate := cfg.CacheInvalidate
	if invalidate == nil {
		invalidate = passthrough
	}

	destinations := app.Group("/destinations")
	destinations.Get("", authenticated, cached, cfg.Destinations.List)
	destinations.Get("/id/:id", authenticated, cached, cfg.Destinations.Get)
	destinations.Get("/category/:category", authenticated, cached, cfg.Destinations.ListByCategory)
	destinations.Post("", adminOnly, invalidate, cfg.Destinations.BulkAdd)
	destinations.Delete("/:id", adminOnly, invalidate, cfg.Destinations.Delete)
	destinations.Delete("", adminOnly, invalidate, cfg.Destinations.DeleteAll)
	app.Post("/sync-destinations", adminOnly, invalidate, cfg.Destinations.Sync)

	app.Post("/reviews", authenticated, cfg.Reviews.Add)
	app.Get("/reviews/destination/:destinationId", authenticated, cfg.Reviews.ListByDestination)
	app.Put("/reviews/:reviewId", authenticated, cfg.Reviews.Update)
	app.Delete("/reviews/:reviewId", authenticated, cfg.Reviews.Delete)

	app.Post("/tickets", authenticated, cfg.Tickets.Create)
	app.Get("/tickets", adminOnly, cfg.Tickets.ListAll)
	app.Get("/tickets/user/:userId",
		cfg.AuthMiddleware.Require(auth.Policy{OwnerParam: "userId"}),
		cfg.Tickets.ListByUser)
	app.Delete("/tickets/:ticketId", authenticated, cfg.Tickets.Cancel)

	app.Post("/recommendation", cfg.Recommendations.Recommend)
}
