package handler

import (
	"job-board/internal/action"
	"job-board/internal/delivery/http/dto"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/delivery/http/response"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	actions *action.Actions
	tr      response.Translator
}

func NewAuthHandler(actions *action.Actions, tr response.Translator) *AuthHandler {
	return &AuthHandler{actions: actions, tr: tr}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router, limit fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/register", limit, h.Register)
	r.Post("/login", limit, h.Login)
	r.Post("/refresh", limit, h.Refresh)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var in action.RegisterInput
	if err := bindBody(c, &in); err != nil {
		return err
	}
	res, err := h.actions.Register(c.Context(), in)
	return response.Action(c, h.tr, middleware.Locale(c), fiber.StatusCreated, res, err)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var in action.LoginInput
	if err := bindBody(c, &in); err != nil {
		return err
	}
	res, err := h.actions.Login(c.Context(), in)
	return response.Action(c, h.tr, middleware.Locale(c), fiber.StatusOK, res, err)
}

// Refresh reads the refresh token from the body, falling back to the
// Authorization header.
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if req.RefreshToken == "" {
		if tok, ok := middleware.BearerToken(c.Get("Authorization")); ok {
			req.RefreshToken = tok
		}
	}
	res, err := h.actions.Refresh(c.Context(), action.RefreshInput{RefreshToken: req.RefreshToken})
	return response.Action(c, h.tr, middleware.Locale(c), fiber.StatusOK, res, err)
}
