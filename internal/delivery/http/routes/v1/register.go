package v1

import (
	"job-board/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	JobPostings   *handler.JobPostingHandler
	Announcements *handler.AnnouncementHandler
	Applications  *handler.ApplicationHandler
	Candidates    *handler.CandidateHandler
	Auth          *handler.AuthHandler
	Users         *handler.UserHandler
	Analytics     *handler.AnalyticsHandler

	// RateLimit guards mutating routes.
	RateLimit fiber.Handler
	// RenderCache serves anonymous public listings.
	RenderCache fiber.Handler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	limit := h.RateLimit
	if limit == nil {
		limit = func(c fiber.Ctx) error { return c.Next() }
	}
	public := func(prefix string) fiber.Router {
		if h.RenderCache != nil {
			return r.Group(prefix, h.RenderCache)
		}
		return r.Group(prefix)
	}

	if h.JobPostings != nil {
		h.JobPostings.RegisterRoutes(public("/job-postings"))
	}
	if h.Announcements != nil {
		h.Announcements.RegisterRoutes(public("/announcements"))
	}
	if h.Applications != nil {
		h.Applications.RegisterRoutes(r.Group("/applications"), limit)
	}
	if h.Candidates != nil {
		h.Candidates.RegisterRoutes(r.Group("/candidates"))
	}
	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"), limit)
	}
	if h.Users != nil {
		h.Users.RegisterRoutes(r.Group("/users"), limit)
	}
	if h.Analytics != nil {
		h.Analytics.RegisterRoutes(r.Group("/analytics"))
	}
}
