package middleware

import (
	"github.com/gofiber/fiber/v3"
)

type requestObserver interface {
	RequestStarted() func(method, route string, status int)
}

type MetricsMiddleware struct {
	observer requestObserver
}

func NewMetricsMiddleware(observer requestObserver) *MetricsMiddleware {
	return &MetricsMiddleware{observer: observer}
}

func (m *MetricsMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}

		done := m.observer.RequestStarted()
		err := c.Next()

		route := ""
		if r := c.Route(); r != nil {
			route = r.Path
		}
		done(c.Method(), route, c.Response().StatusCode())
		return err
	}
}
