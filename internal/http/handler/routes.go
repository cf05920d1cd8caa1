package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"spouseshowcase/internal/service"
)

// RouteConfig carries the dependencies of RegisterRoutes besides the service.
type RouteConfig struct {
	Options
	// DB backs /health; nil skips the ping.
	DB Pinger
	// Gatherer backs /metrics; nil leaves the route out.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches the API, health and metrics routes to app.
func RegisterRoutes(app *fiber.App, svc service.SpouseService, cfg RouteConfig) {
	app.Get("/health", HealthCheck(cfg.DB))
	app.Get("/healthz", LivenessProbe())

	if cfg.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")
	api.Get("/spouses", ListSpouses(svc, cfg.Options))
	api.Post("/spouses", CreateSpouse(svc, cfg.Options))
	api.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
}
