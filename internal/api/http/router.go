package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/milsabores/bakery-api/internal/api/http/handlers"
	"github.com/milsabores/bakery-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Products       *handlers.ProductsHandler
	Posts          *handlers.PostsHandler
	Orders         *handlers.OrdersHandler
	Contact        *handlers.ContactHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. API routes live under the /api/v1 prefix;
// probes and metrics stay unprefixed.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle)
	authProtected.Get("/profile", cfg.Auth.Profile)
	authProtected.Post("/password/change", cfg.Auth.ChangePassword)

	products := api.Group("/products")
	products.Get("/", cfg.Products.List)
	products.Get("/:id", cfg.Products.Get)
	productsAdmin := products.Group("", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	productsAdmin.Post("/", cfg.Products.Create)
	productsAdmin.Put("/:id", cfg.Products.Update)
	productsAdmin.Delete("/:id", cfg.Products.Delete)

	posts := api.Group("/posts")
	posts.Get("/", cfg.Posts.List)
	posts.Get("/:id", cfg.Posts.Get)
	postsAdmin := posts.Group("", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	postsAdmin.Post("/", cfg.Posts.Create)
	postsAdmin.Put("/:id", cfg.Posts.Update)
	postsAdmin.Delete("/:id", cfg.Posts.Delete)

	orders := api.Group("/orders", cfg.AuthMiddleware.Handle)
	orders.Post("/", cfg.Orders.Create)
	orders.Get("/", cfg.Orders.List)
	orders.Get("/:id", cfg.Orders.Get)
	orders.Patch("/:id/status", auth.RequireAdmin(), cfg.Orders.UpdateStatus)

	contact := api.Group("/contact")
	contact.Post("/", cfg.Contact.Submit)
	contact.Get("/", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.Contact.List)
}
