package routes

import (
	"net/http"

	"job-board/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
)

type Registry struct {
	health  *handler.HealthHandler
	metrics http.Handler
	ws      fiber.Handler
	v1      V1Handlers
}

func NewRegistry(health *handler.HealthHandler, metrics http.Handler, ws fiber.Handler, v1 V1Handlers) *Registry {
	return &Registry{health: health, metrics: metrics, ws: ws, v1: v1}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerOps(app)
	r.registerAPI(app)
}

func (r *Registry) registerOps(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
	if r.metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(r.metrics))
	}
	if r.ws != nil {
		app.Get("/ws", r.ws)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.v1)
}
