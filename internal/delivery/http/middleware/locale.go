package middleware

import (
	"github.com/gofiber/fiber/v3"
	"golang.org/x/text/language"
)

const localeKey = "locale"

type localeMatcher interface {
	Match(prefs ...string) language.Tag
}

// LocaleMiddleware resolves the response locale from ?lang, then the
// Accept-Language header.
type LocaleMiddleware struct {
	matcher localeMatcher
}

func NewLocaleMiddleware(matcher localeMatcher) *LocaleMiddleware {
	return &LocaleMiddleware{matcher: matcher}
}

func (m *LocaleMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		tag := m.matcher.Match(c.Query("lang"), c.Get(fiber.HeaderAcceptLanguage))
		locale := tag.String()
		c.Locals(localeKey, locale)
		c.Set(fiber.HeaderContentLanguage, locale)
		return c.Next()
	}
}

// Locale returns the resolved locale, or "" when the middleware did not run.
func Locale(c fiber.Ctx) string {
	s, _ := c.Locals(localeKey).(string)
	return s
}
