package usecase

import (
	"context"
	"sync"

	"job-board/internal/domain/announcement"
	"job-board/internal/domain/application"
	"job-board/internal/domain/job"
	"job-board/internal/domain/user"
	"job-board/internal/repository"

	"github.com/google/uuid"
)

type fakePostingRepo struct {
	mu       sync.Mutex
	postings map[uuid.UUID]job.Posting
	items    []job.Posting
	total    int
	err      error
	filters  []repository.JobPostingFilter
}

func (f *fakePostingRepo) List(_ context.Context, flt repository.JobPostingFilter) ([]job.Posting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, flt)
	return f.items, f.err
}

func (f *fakePostingRepo) Count(_ context.Context, flt repository.JobPostingFilter) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, flt)
	return f.total, f.err
}

func (f *fakePostingRepo) FindByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	p, ok := f.postings[id]
	if !ok {
		return job.Posting{}, repository.ErrJobPostingNotFound
	}
	return p, nil
}

func (f *fakePostingRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.postings[id]
	return ok, nil
}

type fakeApplicationRepo struct {
	apps        map[uuid.UUID]application.Application
	orgReach    map[uuid.UUID]bool
	insertErr   error
	forceNoRows bool
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: map[uuid.UUID]application.Application{}, orgReach: map[uuid.UUID]bool{}}
}

func (f *fakeApplicationRepo) FindByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	a, ok := f.apps[id]
	if !ok {
		return application.Application{}, repository.ErrApplicationNotFound
	}
	return a, nil
}

func (f *fakeApplicationRepo) ExistsActive(_ context.Context, candidateID, postingID uuid.UUID) (bool, error) {
	for _, a := range f.apps {
		if a.CandidateID == candidateID && a.JobPostingID == postingID && a.Status.Active() {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) Create(_ context.Context, a application.Application) (application.Application, error) {
	if f.insertErr != nil {
		return application.Application{}, f.insertErr
	}
	a.ID = uuid.New()
	f.apps[a.ID] = a
	return a, nil
}

func (f *fakeApplicationRepo) UpdateStatusIf(_ context.Context, id uuid.UUID, from, next application.Status) (bool, error) {
	a, ok := f.apps[id]
	if !ok || a.Status != from || f.forceNoRows {
		return false, nil
	}
	a.Status = next
	f.apps[id] = a
	return true, nil
}

func (f *fakeApplicationRepo) ListByCandidate(_ context.Context, candidateID uuid.UUID) ([]application.WithPosting, error) {
	out := []application.WithPosting{}
	for _, a := range f.apps {
		if a.CandidateID == candidateID {
			out = append(out, application.WithPosting{Application: a})
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListByJobPosting(_ context.Context, postingID uuid.UUID) ([]application.WithCandidate, error) {
	out := []application.WithCandidate{}
	for _, a := range f.apps {
		if a.JobPostingID == postingID {
			out = append(out, application.WithCandidate{Application: a})
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) OrganizationHasApplicationFrom(_ context.Context, orgID, candidateID uuid.UUID) (bool, error) {
	return f.orgReach[orgID] && candidateID != uuid.Nil, nil
}

type fakeAnnouncementRepo struct {
	refs []announcement.Ref
}

func (f *fakeAnnouncementRepo) List(context.Context, int, int) ([]announcement.Announcement, error) {
	return nil, nil
}
func (f *fakeAnnouncementRepo) Count(context.Context) (int, error) { return len(f.refs), nil }
func (f *fakeAnnouncementRepo) FindByID(_ context.Context, id uuid.UUID) (announcement.Announcement, error) {
	for _, r := range f.refs {
		if r.ID == id {
			return announcement.Announcement{ID: r.ID, Title: r.Title}, nil
		}
	}
	return announcement.Announcement{}, repository.ErrAnnouncementNotFound
}
func (f *fakeAnnouncementRepo) ListRefs(context.Context) ([]announcement.Ref, error) {
	return f.refs, nil
}

type fakeUserRepo struct {
	users    map[uuid.UUID]user.User
	profiles map[uuid.UUID]user.Profile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]user.User{}, profiles: map[uuid.UUID]user.Profile{}}
}

func (f *fakeUserRepo) Provision(_ context.Context, u user.User, p user.Profile) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	f.users[u.ID] = u
	f.profiles[u.ID] = p
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserRepo) GetProfile(_ context.Context, id uuid.UUID) (user.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return user.Profile{}, user.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, p user.Profile) (user.Profile, error) {
	if _, ok := f.profiles[p.UserID]; !ok {
		return user.Profile{}, user.ErrProfileNotFound
	}
	f.profiles[p.UserID] = p
	return p, nil
}
