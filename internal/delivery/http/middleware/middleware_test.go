package middleware

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"job-board/internal/i18n"
	"job-board/internal/pkg/jwt"
	"job-board/internal/session"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil, nil).Middleware())
	for _, h := range handlers {
		app.Use(h)
	}
	return app
}

func TestRateLimiter_RejectsOverBurst(t *testing.T) {
	app := newTestApp(NewRateLimiter(1, 1).Middleware())
	app.Get("/", func(c fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestRateLimiter_CleanupForgetsIdleVisitors(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewRateLimiter(1, 1)
	l.now = func() time.Time { return now }

	l.allow("a")
	now = now.Add(time.Hour)
	l.allow("b")

	assert.Equal(t, 1, l.Cleanup(10*time.Minute))
	assert.Len(t, l.visitors, 1)
}

func TestErrorMiddleware_HidesInternalErrors(t *testing.T) {
	app := newTestApp()
	app.Get("/", func(c fiber.Ctx) error { return io.ErrUnexpectedEOF })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "internal server error", body["message"])
}

func TestLocaleMiddleware_MatchesAcceptLanguage(t *testing.T) {
	bundle, err := i18n.Load("en")
	require.NoError(t, err)

	app := newTestApp(NewLocaleMiddleware(bundle).Middleware())
	app.Get("/", func(c fiber.Ctx) error { return c.SendString(Locale(c)) })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Language", "id-ID,id;q=0.9,en;q=0.5")
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "id", string(b))
	assert.Equal(t, "id", resp.Header.Get("Content-Language"))

	resp, err = app.Test(httptest.NewRequest("GET", "/?lang=fr", nil))
	require.NoError(t, err)
	b, _ = io.ReadAll(resp.Body)
	assert.Equal(t, "en", string(b))
}

func TestAuthMiddleware_AttachesSession(t *testing.T) {
	svc := jwt.NewHMACService("job-board", "access", "refresh", time.Minute, time.Hour)
	userID := uuid.New()
	pair, err := svc.GeneratePair(userID, "a@example.com")
	require.NoError(t, err)

	app := newTestApp(NewAuthMiddleware(svc, nil).Middleware())
	app.Get("/", func(c fiber.Ctx) error {
		s := session.FromContext(c.Context())
		if s == nil {
			return c.SendString("anonymous")
		}
		return c.SendString(s.User.ID.String())
	})

	cases := map[string]string{
		"Bearer " + pair.AccessToken:  userID.String(),
		"Bearer " + pair.RefreshToken: "anonymous",
		"Bearer garbage":              "anonymous",
		"":                            "anonymous",
	}
	for header, want := range cases {
		req := httptest.NewRequest("GET", "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		b, _ := io.ReadAll(resp.Body)
		assert.Equal(t, want, string(b), header)
	}
}

func TestBearerToken(t *testing.T) {
	tok, ok := BearerToken("  bearer abc ")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	_, ok = BearerToken("Basic abc")
	assert.False(t, ok)
	_, ok = BearerToken("Bearer ")
	assert.False(t, ok)
}

type memoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memoryStore) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *memoryStore) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}

type countingObserver struct {
	hits, misses int
}

func (o *countingObserver) ObserveCacheLookup(hit bool) {
	if hit {
		o.hits++
	} else {
		o.misses++
	}
}

func TestRenderCache_ServesSecondRequestFromCache(t *testing.T) {
	store := &memoryStore{data: map[string][]byte{}}
	obs := &countingObserver{}
	calls := 0

	app := newTestApp(NewRenderCacheMiddleware(store, time.Minute, obs, nil).Middleware())
	app.Get("/api/v1/job-postings", func(c fiber.Ctx) error {
		calls++
		return c.JSON(fiber.Map{"calls": calls})
	})

	for _, target := range []string{"/api/v1/job-postings?page=1", "/api/v1/job-postings"} {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		b, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"calls":1}`, string(b))
	}

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, obs.hits)
	assert.Equal(t, 1, obs.misses)
}

func TestRenderCache_SkipsNonOK(t *testing.T) {
	store := &memoryStore{data: map[string][]byte{}}
	app := newTestApp(NewRenderCacheMiddleware(store, time.Minute, nil, nil).Middleware())
	app.Get("/missing", func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })

	_, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Empty(t, store.data)
}
