package handler

import (
	"context"
	"time"

	"job-board/internal/delivery/http/dto"
	"job-board/internal/delivery/http/response"

	"github.com/gofiber/fiber/v3"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    pinger
	cache pinger
}

func NewHealthHandler(db, cache pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

// Health answers 503 only when the database is down.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	out := dto.HealthResponse{Database: "up", Cache: "up"}
	status := fiber.StatusOK
	if h.db == nil || h.db.Ping(ctx) != nil {
		out.Database = "down"
		status = fiber.StatusServiceUnavailable
	}
	if h.cache == nil || h.cache.Ping(ctx) != nil {
		out.Cache = "down"
	}

	if status != fiber.StatusOK {
		return response.Error(c, status, "unavailable", out)
	}
	return response.Success(c, status, response.MessageOK, out)
}
