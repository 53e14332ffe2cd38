package action

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"job-board/internal/domain/apperr"
	"job-board/internal/domain/user"
	"job-board/internal/session"
	"job-board/internal/usecase"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Revalidator drops cached renderings of paths after a write.
type Revalidator interface {
	RevalidatePaths(ctx context.Context, paths ...string) error
}

// Recorder counts action outcomes.
type Recorder interface {
	ObserveAction(action, outcome string)
}

type Deps struct {
	JobPostings   usecase.JobPostingUsecase
	Announcements usecase.AnnouncementUsecase
	Applications  usecase.ApplicationUsecase
	Candidates    usecase.CandidateUsecase
	Users         usecase.UserUsecase
	Auth          usecase.AuthUsecase
	Revalidator   Revalidator
	Recorder      Recorder
	Logger        logrus.FieldLogger
}

type Actions struct {
	d Deps
}

func New(d Deps) *Actions {
	return &Actions{d: d}
}

const (
	outcomeSuccess = "success"
	outcomeFatal   = "fatal"
)

func run[T any](ctx context.Context, a *Actions, name string, fb fallback, fn func(ctx context.Context) (T, error)) (Result[T], error) {
	data, err := fn(ctx)
	if err == nil {
		a.observe(name, outcomeSuccess)
		return Ok(data), nil
	}

	ae, fatal := normalize(err, fb)
	if fatal != nil {
		a.observe(name, outcomeFatal)
		if a.d.Logger != nil {
			a.d.Logger.WithError(fatal).WithField("action", name).Error("[Action] fatal")
		}
		return Result[T]{}, fatal
	}

	a.observe(name, string(ae.ErrorCode))
	return Fail[T](*ae), nil
}

func (a *Actions) observe(name, outcome string) {
	if a.d.Recorder != nil {
		a.d.Recorder.ObserveAction(name, outcome)
	}
}

// currentUser resolves the caller from the request session.
func (a *Actions) currentUser(ctx context.Context) (user.Context, error) {
	s := session.FromContext(ctx)
	if s == nil {
		return user.Context{}, apperr.Unauthorized()
	}
	return a.d.Users.ResolveContext(ctx, s)
}

// revalidate runs after a successful write. Failures are logged only.
func (a *Actions) revalidate(ctx context.Context, paths ...string) {
	if a.d.Revalidator == nil || len(paths) == 0 {
		return
	}
	if err := a.d.Revalidator.RevalidatePaths(ctx, paths...); err != nil && a.d.Logger != nil {
		a.d.Logger.WithError(err).WithField("paths", paths).Warn("[Action] revalidation failed")
	}
}

// idInput is validated lower-cased; the uuid tag only accepts lowercase hex.
type idInput struct {
	ID string `json:"id" validate:"required,uuid"`
}

func parseID(raw string) (uuid.UUID, error) {
	in := idInput{ID: strings.ToLower(strings.TrimSpace(raw))}
	if err := validate.Struct(in); err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(in.ID)
}

func first(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

// optionalInt reads a positive integer query value. A present but
// non-integer value is recorded as an issue.
func optionalInt(values url.Values, key string, issues *ValidationError) *int {
	raw := first(values, key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		issues.add("%s must be an integer", key)
		return nil
	}
	return &n
}
