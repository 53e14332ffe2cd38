package handler

import (
	"job-board/internal/action"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/delivery/http/response"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	actions *action.Actions
	tr      response.Translator
}

func NewApplicationHandler(actions *action.Actions, tr response.Translator) *ApplicationHandler {
	return &ApplicationHandler{actions: actions, tr: tr}
}

// RegisterRoutes mounts the application routes. Mutations go through limit.
func (h *ApplicationHandler) RegisterRoutes(r fiber.Router, limit fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/me", h.ListMine)
	r.Post("/", limit, h.Create)
	r.Post("/:id/withdraw", limit, h.Withdraw)
}

func (h *ApplicationHandler) Create(c fiber.Ctx) error {
	var in action.CreateApplicationInput
	if err := bindBody(c, &in); err != nil {
		return err
	}
	res, err := h.actions.CreateApplication(c.Context(), in)
	return response.Action(c, h.tr, middleware.Locale(c), fiber.StatusCreated, res, err)
}

func (h *ApplicationHandler) Withdraw(c fiber.Ctx) error {
	res, err := h.actions.WithdrawApplication(c.Context(), c.Params("id"))
	return response.Action(c, h.tr, middleware.Locale(c), fiber.StatusOK, res, err)
}

func (h *ApplicationHandler) ListMine(c fiber.Ctx) error {
	res, err := h.actions.ListMyApplications(c.Context())
	return response.Action(c, h.tr, middleware.Locale(c), fiber.StatusOK, res, err)
}
