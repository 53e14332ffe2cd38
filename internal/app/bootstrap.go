package app

import (
	"context"
	"fmt"
	"strings"

	"job-board/internal/config"
	"job-board/internal/delivery/http/handler"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/delivery/http/routes"
	"job-board/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the HTTP app on an existing container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap wires the container, the HTTP app and the background workers.
// The returned cleanup stops the workers and releases connections.
func Bootstrap(cfg config.Config, logger *logrus.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	sched, err := NewScheduler(c)
	if err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	go c.Hub.Run(ctx)
	sched.Start()

	app := New(c)
	cleanup := func() error {
		<-sched.Stop().Done()
		cancel()
		return c.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewMetricsMiddleware(c.Metrics).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.I18n, c.Logger).Middleware())
	app.Use(middleware.NewLocaleMiddleware(c.I18n).Middleware())
	app.Use(middleware.NewAuthMiddleware(c.JWT, c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	tr := c.I18n
	v1 := routes.V1Handlers{
		JobPostings:   handler.NewJobPostingHandler(c.Actions, tr),
		Announcements: handler.NewAnnouncementHandler(c.Actions, tr),
		Applications:  handler.NewApplicationHandler(c.Actions, tr),
		Candidates:    handler.NewCandidateHandler(c.Actions, tr),
		Auth:          handler.NewAuthHandler(c.Actions, tr),
		Users:         handler.NewUserHandler(c.Actions, tr),
		Analytics:     handler.NewAnalyticsHandler(c.Analytics, c.Config.IsProduction(), c.Logger),
		RateLimit:     c.RateLimiter.Middleware(),
		RenderCache:   middleware.NewRenderCacheMiddleware(c.Cache, c.Config.Redis.TTL, c.Metrics, c.Logger).Middleware(),
	}

	routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Cache),
		c.Metrics.Handler(),
		ws.NewHandler(c.Hub, c.Logger).HandleRevalidations,
		v1,
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
