package handler

import (
	"job-board/internal/action"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/delivery/http/response"

	"github.com/gofiber/fiber/v3"
)

type JobPostingHandler struct {
	actions *action.Actions
	tr      response.Translator
}

func NewJobPostingHandler(actions *action.Actions, tr response.Translator) *JobPostingHandler {
	return &JobPostingHandler{actions: actions, tr: tr}
}

func (h *JobPostingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/search", h.Search)
	r.Get("/:id", h.Get)
	r.Get("/:id/applications", h.ListApplications)
}

func (h *JobPostingHandler) List(c fiber.Ctx) error {
	res, err := h.actions.ListJobPostings(c.Context(), queryValues(c))
	return response.Action(c, h.tr, middleware.Locale(c), fiber.StatusOK, res, err)
}

func (h *JobPostingHandler) Search(c fiber.Ctx) error {
	res, err := h.actions.FilterJobPostings(c.Context(), queryValues(c))
	return response.Action(c, h.tr, middleware.Locale(c), fiber.StatusOK, res, err)
}

func (h *JobPostingHandler) Get(c fiber.Ctx) error {
	res, err := h.actions.GetJobPosting(c.Context(), c.Params("id"))
	return response.Action(c, h.tr, middleware.Locale(c), fiber.StatusOK, res, err)
}

func (h *JobPostingHandler) ListApplications(c fiber.Ctx) error {
	res, err := h.actions.ListApplicationsForJobPosting(c.Context(), c.Params("id"))
	return response.Action(c, h.tr, middleware.Locale(c), fiber.StatusOK, res, err)
}
