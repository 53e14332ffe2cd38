package middleware

import (
	"context"
	"time"

	"job-board/internal/infrastructure/cache"
	"job-board/internal/session"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

type renderStore interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type cacheObserver interface {
	ObserveCacheLookup(hit bool)
}

const HeaderCache = "X-Cache"

// RenderCacheMiddleware serves anonymous GET responses from the render cache.
// Entries are dropped by the revalidator when a write touches their path.
type RenderCacheMiddleware struct {
	store    renderStore
	ttl      time.Duration
	observer cacheObserver
	logger   logrus.FieldLogger
}

func NewRenderCacheMiddleware(store renderStore, ttl time.Duration, observer cacheObserver, logger logrus.FieldLogger) *RenderCacheMiddleware {
	return &RenderCacheMiddleware{store: store, ttl: ttl, observer: observer, logger: logger}
}

func (m *RenderCacheMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if c.Method() != fiber.MethodGet || session.FromContext(c.Context()) != nil {
			return c.Next()
		}

		ctx := c.Context()
		key := cache.RenderKey(c.Path(), string(c.Request().URI().QueryString()), Locale(c))

		var entry cache.RenderEntry
		hit, err := m.store.GetJSON(ctx, key, &entry)
		if err != nil && m.logger != nil {
			m.logger.WithError(err).Debug("[Cache] render lookup failed")
		}
		m.observe(hit)
		if hit {
			c.Set(HeaderCache, "HIT")
			c.Set(fiber.HeaderContentType, entry.ContentType)
			return c.Status(entry.Status).Send(entry.Body)
		}

		c.Set(HeaderCache, "MISS")
		if err := c.Next(); err != nil {
			return err
		}

		if c.Response().StatusCode() != fiber.StatusOK {
			return nil
		}
		body := append([]byte(nil), c.Response().Body()...)
		entry = cache.RenderEntry{
			Status:      fiber.StatusOK,
			ContentType: string(c.Response().Header.ContentType()),
			Body:        body,
		}
		if err := m.store.SetJSON(ctx, key, entry, m.ttl); err != nil && m.logger != nil {
			m.logger.WithError(err).Debug("[Cache] render store failed")
		}
		return nil
	}
}

func (m *RenderCacheMiddleware) observe(hit bool) {
	if m.observer != nil {
		m.observer.ObserveCacheLookup(hit)
	}
}
