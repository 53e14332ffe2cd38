package handler

import (
	"job-board/internal/action"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/delivery/http/response"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	actions *action.Actions
	tr      response.Translator
}

func NewUserHandler(actions *action.Actions, tr response.Translator) *UserHandler {
	return &UserHandler{actions: actions, tr: tr}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router, limit fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
	r.Put("/me/profile", limit, h.UpdateProfile)
}

func (h *UserHandler) GetMe(c fiber.Ctx) error {
	res, err := h.actions.GetMe(c.Context())
	return response.Action(c, h.tr, middleware.Locale(c), fiber.StatusOK, res, err)
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	var in action.UpdateProfileInput
	if err := bindBody(c, &in); err != nil {
		return err
	}
	res, err := h.actions.UpdateMyProfile(c.Context(), in)
	return response.Action(c, h.tr, middleware.Locale(c), fiber.StatusOK, res, err)
}
