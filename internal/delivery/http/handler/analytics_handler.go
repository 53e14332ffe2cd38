package handler

import (
	"time"

	"job-board/internal/analytics"
	"job-board/internal/delivery/http/dto"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/delivery/http/response"
	"job-board/internal/session"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

const consentCookieMaxAge = 365 * 24 * time.Hour

type AnalyticsHandler struct {
	factory *analytics.Factory
	secure  bool
	logger  logrus.FieldLogger
}

func NewAnalyticsHandler(factory *analytics.Factory, secureCookie bool, logger logrus.FieldLogger) *AnalyticsHandler {
	return &AnalyticsHandler{factory: factory, secure: secureCookie, logger: logger}
}

func (h *AnalyticsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/consent", h.SetConsent)
}

// SetConsent stores the visitor's decision in the consent cookie and applies
// it to this request's client, which flushes or drops queued events.
func (h *AnalyticsHandler) SetConsent(c fiber.Ctx) error {
	var req dto.ConsentRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if req.Granted == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "granted is required", nil, nil)
	}

	consent := analytics.ConsentDenied
	if *req.Granted {
		consent = analytics.ConsentGranted
	}

	c.Cookie(&fiber.Cookie{
		Name:     analytics.CookieName,
		Value:    consent.String(),
		Path:     "/",
		MaxAge:   int(consentCookieMaxAge.Seconds()),
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	client := h.factory.ForRequest(c.Cookies(analytics.CookieName), distinctID(c))
	if err := client.SetConsent(c.Context(), consent); err != nil && h.logger != nil {
		h.logger.WithError(err).Warn("[Analytics] consent flush failed")
	}
	if err := client.Track(c.Context(), "consent_"+consent.String(), nil); err != nil && h.logger != nil {
		h.logger.WithError(err).Warn("[Analytics] track failed")
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ConsentResponse{Consent: consent.String()})
}

func distinctID(c fiber.Ctx) string {
	if s := session.FromContext(c.Context()); s != nil {
		return s.User.ID.String()
	}
	return c.GetRespHeader(middleware.HeaderRequestID)
}
