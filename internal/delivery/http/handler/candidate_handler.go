package handler

import (
	"job-board/internal/action"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/delivery/http/response"

	"github.com/gofiber/fiber/v3"
)

type CandidateHandler struct {
	actions *action.Actions
	tr      response.Translator
}

func NewCandidateHandler(actions *action.Actions, tr response.Translator) *CandidateHandler {
	return &CandidateHandler{actions: actions, tr: tr}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:id", h.GetProfile)
}

func (h *CandidateHandler) GetProfile(c fiber.Ctx) error {
	res, err := h.actions.GetCandidateProfile(c.Context(), c.Params("id"))
	return response.Action(c, h.tr, middleware.Locale(c), fiber.StatusOK, res, err)
}
