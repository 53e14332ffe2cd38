package middleware

import (
	"strings"

	"job-board/internal/pkg/jwt"
	"job-board/internal/session"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// AuthMiddleware attaches a session when the request carries a valid access
// token. Requests without one continue anonymously; actions that need a
// signed-in user answer UNAUTHORIZED themselves.
type AuthMiddleware struct {
	jwt    jwt.Service
	logger logrus.FieldLogger
}

func NewAuthMiddleware(jwtSvc jwt.Service, logger logrus.FieldLogger) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc, logger: logger}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := BearerToken(c.Get("Authorization"))
		if !ok {
			return c.Next()
		}

		claims, err := m.jwt.ValidateAccessToken(token)
		if err != nil {
			if m.logger != nil {
				m.logger.WithError(err).Debug("[Auth] ignoring invalid access token")
			}
			return c.Next()
		}

		if s := session.FromClaims(claims); s != nil {
			c.SetContext(session.WithSession(c.Context(), s))
		}
		return c.Next()
	}
}

func BearerToken(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
