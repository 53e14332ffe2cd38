package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"job-board/internal/action"
	"job-board/internal/analytics"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/domain/apperr"
	"job-board/internal/domain/job"
	"job-board/internal/i18n"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPostings struct {
	last usecase.ListJobPostingsParams
}

func (s *stubPostings) List(_ context.Context, p usecase.ListJobPostingsParams) (usecase.Page[job.Posting], error) {
	s.last = p
	return usecase.Page[job.Posting]{Items: []job.Posting{{Title: "Go Engineer"}}, Total: 1, Page: p.Page, PageSize: p.PageSize}, nil
}

func (s *stubPostings) Get(context.Context, uuid.UUID) (job.Posting, error) {
	return job.Posting{}, apperr.NotFound(apperr.EntityJobPosting)
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newApp(t *testing.T, postings *stubPostings) *fiber.App {
	t.Helper()
	bundle, err := i18n.Load("en")
	require.NoError(t, err)

	actions := action.New(action.Deps{JobPostings: postings})

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(bundle, nil).Middleware())
	app.Use(middleware.NewLocaleMiddleware(bundle).Middleware())

	NewJobPostingHandler(actions, bundle).RegisterRoutes(app.Group("/api/v1/job-postings"))
	NewApplicationHandler(actions, bundle).RegisterRoutes(app.Group("/api/v1/applications"), func(c fiber.Ctx) error { return c.Next() })
	NewAnalyticsHandler(analytics.NewFactory(nil, true, 10, nil), false, nil).RegisterRoutes(app.Group("/api/v1/analytics"))
	return app
}

func decode(t *testing.T, body io.Reader) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(body).Decode(&env))
	return env
}

func TestJobPostingHandler_List(t *testing.T) {
	postings := &stubPostings{}
	app := newApp(t, postings)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/job-postings?search=%20go%20&sort=created_desc", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decode(t, resp.Body)
	assert.Equal(t, "OK", env.Message)

	var data struct {
		Success bool `json:"success"`
		Data    struct {
			Items []job.Posting `json:"items"`
			Href  string        `json:"href"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Success)
	assert.Len(t, data.Data.Items, 1)
	assert.Equal(t, "/api/v1/job-postings?search=go&sort=created_desc", data.Data.Href)
	assert.Equal(t, "go", postings.last.Search)
}

func TestJobPostingHandler_ListKeepsValidPairsBesideMalformedOnes(t *testing.T) {
	postings := &stubPostings{}
	app := newApp(t, postings)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/job-postings?search=go&junk=%zz", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "go", postings.last.Search)
}

func TestJobPostingHandler_NotFoundIsLocalized(t *testing.T) {
	app := newApp(t, &stubPostings{})

	req := httptest.NewRequest("GET", "/api/v1/job-postings/"+uuid.NewString(), nil)
	req.Header.Set("Accept-Language", "id")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	env := decode(t, resp.Body)
	assert.NotEmpty(t, env.Message)
	assert.NotEqual(t, "job posting not found", env.Message)

	var ae action.ActionError
	require.NoError(t, json.Unmarshal(env.Data, &ae))
	assert.Equal(t, apperr.CodeNotFound, ae.ErrorCode)
	assert.Equal(t, "error.notFound.jobPosting", ae.ErrorKey)
}

func TestJobPostingHandler_SearchRejectsBadFilter(t *testing.T) {
	app := newApp(t, &stubPostings{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/job-postings/search?employmentType=gig", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	env := decode(t, resp.Body)
	assert.Equal(t, "The selected filters are invalid.", env.Message)
}

func TestApplicationHandler_CreateRequiresSession(t *testing.T) {
	app := newApp(t, &stubPostings{})

	req := httptest.NewRequest("POST", "/api/v1/applications", strings.NewReader(`{"jdId":"`+uuid.NewString()+`"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	env := decode(t, resp.Body)
	assert.Equal(t, "Please sign in to continue.", env.Message)
}

func TestAnalyticsHandler_SetsConsentCookie(t *testing.T) {
	app := newApp(t, &stubPostings{})

	req := httptest.NewRequest("POST", "/api/v1/analytics/consent", strings.NewReader(`{"granted":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	cookie := resp.Header.Get("Set-Cookie")
	assert.Contains(t, cookie, analytics.CookieName+"=granted")

	req = httptest.NewRequest("POST", "/api/v1/analytics/consent", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
