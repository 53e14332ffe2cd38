package handler

import (
	"job-board/internal/action"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/delivery/http/response"

	"github.com/gofiber/fiber/v3"
)

type AnnouncementHandler struct {
	actions *action.Actions
	tr      response.Translator
}

func NewAnnouncementHandler(actions *action.Actions, tr response.Translator) *AnnouncementHandler {
	return &AnnouncementHandler{actions: actions, tr: tr}
}

func (h *AnnouncementHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Get("/:id/neighbors", h.Neighbors)
}

func (h *AnnouncementHandler) List(c fiber.Ctx) error {
	res, err := h.actions.ListAnnouncements(c.Context(), queryValues(c))
	return response.Action(c, h.tr, middleware.Locale(c), fiber.StatusOK, res, err)
}

func (h *AnnouncementHandler) Get(c fiber.Ctx) error {
	res, err := h.actions.GetAnnouncement(c.Context(), c.Params("id"))
	return response.Action(c, h.tr, middleware.Locale(c), fiber.StatusOK, res, err)
}

func (h *AnnouncementHandler) Neighbors(c fiber.Ctx) error {
	res, err := h.actions.GetAnnouncementNeighbors(c.Context(), c.Params("id"))
	return response.Action(c, h.tr, middleware.Locale(c), fiber.StatusOK, res, err)
}
