package routes

import (
	"net/http"

	"skill-insight/internal/delivery/http/handler"
	"skill-insight/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
)

type Registry struct {
	health    *handler.HealthHandler
	page      *handler.PageHandler
	dashboard usecase.DashboardUsecase
	metrics   http.Handler
}

func NewRegistry(dashboard usecase.DashboardUsecase, metrics http.Handler) *Registry {
	return &Registry{
		health:    handler.NewHealthHandler(func() int { return dashboard.Summary().Postings }),
		page:      handler.NewPageHandler(),
		dashboard: dashboard,
		metrics:   metrics,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.page.RegisterRoutes(app)
	r.registerMetrics(app)
	r.registerAPI(app)
}

func (r *Registry) registerMetrics(app *fiber.App) {
	if r.metrics == nil {
		return
	}
	app.Get("/metrics", adaptor.HTTPHandler(r.metrics))
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.dashboard)
}
