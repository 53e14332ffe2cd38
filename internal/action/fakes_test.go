package action

import (
	"context"
	"sync"

	"job-board/internal/domain/announcement"
	"job-board/internal/domain/apperr"
	"job-board/internal/domain/application"
	"job-board/internal/domain/job"
	"job-board/internal/domain/role"
	"job-board/internal/domain/user"
	"job-board/internal/session"
	"job-board/internal/usecase"
	ucuser "job-board/internal/usecase/user"

	"github.com/google/uuid"
)

type fakePostings struct {
	mu     sync.Mutex
	calls  []usecase.ListJobPostingsParams
	page   usecase.Page[job.Posting]
	err    error
	getErr error
}

func (f *fakePostings) List(_ context.Context, params usecase.ListJobPostingsParams) (usecase.Page[job.Posting], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, params)
	if f.err != nil {
		return usecase.Page[job.Posting]{}, f.err
	}
	p := f.page
	p.Page = params.Page
	p.PageSize = params.PageSize
	return p, nil
}

func (f *fakePostings) Get(_ context.Context, id uuid.UUID) (job.Posting, error) {
	if f.getErr != nil {
		return job.Posting{}, f.getErr
	}
	return job.Posting{ID: id}, nil
}

type fakeAnnouncements struct {
	listed [][2]int
}

func (f *fakeAnnouncements) List(_ context.Context, page, pageSize int) (usecase.Page[announcement.Announcement], error) {
	f.listed = append(f.listed, [2]int{page, pageSize})
	return usecase.Page[announcement.Announcement]{Items: []announcement.Announcement{}, Page: page, PageSize: pageSize}, nil
}

func (f *fakeAnnouncements) Get(_ context.Context, id uuid.UUID) (announcement.Announcement, error) {
	return announcement.Announcement{}, apperr.NotFound(apperr.EntityAnnouncement)
}

func (f *fakeAnnouncements) Neighbors(_ context.Context, id uuid.UUID) (announcement.Neighbors, error) {
	return announcement.Neighbors{}, nil
}

type fakeApplications struct {
	created   []uuid.UUID
	withdrawn []uuid.UUID
	createErr error
}

func (f *fakeApplications) Create(_ context.Context, current user.Context, postingID uuid.UUID) (application.Application, error) {
	if f.createErr != nil {
		return application.Application{}, f.createErr
	}
	f.created = append(f.created, postingID)
	return application.Application{ID: uuid.New(), CandidateID: current.UserID, JobPostingID: postingID, Status: application.StatusApplied}, nil
}

func (f *fakeApplications) Withdraw(_ context.Context, _ user.Context, id uuid.UUID) error {
	f.withdrawn = append(f.withdrawn, id)
	return nil
}

func (f *fakeApplications) ListMine(context.Context, user.Context) ([]application.WithPosting, error) {
	return []application.WithPosting{}, nil
}

func (f *fakeApplications) ListForJobPosting(context.Context, user.Context, uuid.UUID) ([]application.WithCandidate, error) {
	return []application.WithCandidate{}, nil
}

type fakeUsers struct {
	ctx user.Context
}

func (f *fakeUsers) ResolveContext(_ context.Context, s *session.Session) (user.Context, error) {
	if s == nil || s.User.ID != f.ctx.UserID {
		return user.Context{}, apperr.Unauthorized()
	}
	return f.ctx, nil
}

func (f *fakeUsers) GetMe(context.Context, user.Context) (usecase.Me, error) {
	return usecase.Me{}, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, current user.Context, in ucuser.UpdateProfileInput) (user.Profile, error) {
	p := user.Profile{UserID: current.UserID}
	if in.DisplayName != nil {
		p.DisplayName = *in.DisplayName
	}
	return p, nil
}

type fakeRevalidator struct {
	paths []string
	err   error
}

func (f *fakeRevalidator) RevalidatePaths(_ context.Context, paths ...string) error {
	f.paths = append(f.paths, paths...)
	return f.err
}

type fakeRecorder struct {
	outcomes map[string]string
}

func (f *fakeRecorder) ObserveAction(action, outcome string) {
	if f.outcomes == nil {
		f.outcomes = map[string]string{}
	}
	f.outcomes[action] = outcome
}

type fixture struct {
	actions       *Actions
	postings      *fakePostings
	announcements *fakeAnnouncements
	applications  *fakeApplications
	users         *fakeUsers
	revalidator   *fakeRevalidator
	recorder      *fakeRecorder
}

func newFixture() *fixture {
	f := &fixture{
		postings:      &fakePostings{page: usecase.Page[job.Posting]{Items: []job.Posting{}, Total: 45}},
		announcements: &fakeAnnouncements{},
		applications:  &fakeApplications{},
		users:         &fakeUsers{ctx: user.Context{UserID: uuid.New(), Email: "cand@example.com", Role: role.Candidate}},
		revalidator:   &fakeRevalidator{},
		recorder:      &fakeRecorder{},
	}
	f.actions = New(Deps{
		JobPostings:   f.postings,
		Announcements: f.announcements,
		Applications:  f.applications,
		Users:         f.users,
		Revalidator:   f.revalidator,
		Recorder:      f.recorder,
	})
	return f
}

func (f *fixture) signedIn() context.Context {
	return session.WithSession(context.Background(), &session.Session{
		User: session.User{ID: f.users.ctx.UserID, Email: f.users.ctx.Email},
	})
}
