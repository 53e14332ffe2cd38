package usecase

import (
	"context"
	"errors"

	"job-board/internal/authz"
	"job-board/internal/domain/apperr"
	"job-board/internal/domain/application"
	"job-board/internal/domain/role"
	"job-board/internal/domain/user"
	"job-board/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ApplicationUsecase interface {
	Create(ctx context.Context, current user.Context, jobPostingID uuid.UUID) (application.Application, error)
	Withdraw(ctx context.Context, current user.Context, applicationID uuid.UUID) error
	ListMine(ctx context.Context, current user.Context) ([]application.WithPosting, error)
	ListForJobPosting(ctx context.Context, current user.Context, jobPostingID uuid.UUID) ([]application.WithCandidate, error)
}

type Applications struct {
	applications repository.ApplicationRepository
	postings     repository.JobPostingRepository
	logger       logrus.FieldLogger
}

func NewApplicationUsecase(applications repository.ApplicationRepository, postings repository.JobPostingRepository, logger logrus.FieldLogger) *Applications {
	return &Applications{applications: applications, postings: postings, logger: logger}
}

// Create applies the candidate to a posting. The existence check and the
// insert are separate statements; a concurrent duplicate is caught by the
// partial unique index and reported the same way.
func (u *Applications) Create(ctx context.Context, current user.Context, jobPostingID uuid.UUID) (application.Application, error) {
	if err := authz.AssertRole(current.Role, role.Candidate); err != nil {
		return application.Application{}, err
	}

	exists, err := u.postings.ExistsByID(ctx, jobPostingID)
	if err != nil {
		return application.Application{}, err
	}
	if !exists {
		return application.Application{}, apperr.NotFound(apperr.EntityJobPosting)
	}

	active, err := u.applications.ExistsActive(ctx, current.UserID, jobPostingID)
	if err != nil {
		return application.Application{}, err
	}
	if active {
		return application.Application{}, apperr.Conflict(apperr.ConflictAlreadyApplied)
	}

	created, err := u.applications.Create(ctx, application.Application{
		CandidateID:  current.UserID,
		JobPostingID: jobPostingID,
		Status:       application.StatusApplied,
	})
	if err != nil {
		if errors.Is(err, repository.ErrApplicationExists) {
			if u.logger != nil {
				u.logger.WithFields(logrus.Fields{
					"candidate_id":   current.UserID,
					"job_posting_id": jobPostingID,
				}).Warn("[Applications] duplicate insert rejected by index")
			}
			return application.Application{}, apperr.Conflict(apperr.ConflictAlreadyApplied)
		}
		return application.Application{}, err
	}

	if u.logger != nil {
		u.logger.WithFields(logrus.Fields{
			"application_id": created.ID,
			"job_posting_id": jobPostingID,
		}).Info("[Applications] created")
	}
	return created, nil
}

func (u *Applications) Withdraw(ctx context.Context, current user.Context, applicationID uuid.UUID) error {
	app, err := u.applications.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return apperr.NotFound(apperr.EntityApplication)
		}
		return err
	}

	if err := authz.AssertOwnership(current.UserID, app.CandidateID); err != nil {
		return err
	}
	if !app.Status.CanWithdraw() {
		return apperr.Conflict(apperr.ConflictNotWithdrawable)
	}

	// the status may have moved since the read
	ok, err := u.applications.UpdateStatusIf(ctx, app.ID, application.StatusApplied, application.StatusWithdrawn)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Conflict(apperr.ConflictNotWithdrawable)
	}

	if u.logger != nil {
		u.logger.WithField("application_id", app.ID).Info("[Applications] withdrawn")
	}
	return nil
}

func (u *Applications) ListMine(ctx context.Context, current user.Context) ([]application.WithPosting, error) {
	if current.UserID == uuid.Nil {
		return nil, apperr.Unauthorized()
	}
	return u.applications.ListByCandidate(ctx, current.UserID)
}

// ListForJobPosting is open to admins and to recruiters of the posting's
// organization.
func (u *Applications) ListForJobPosting(ctx context.Context, current user.Context, jobPostingID uuid.UUID) ([]application.WithCandidate, error) {
	if err := authz.AssertRole(current.Role, role.Recruiter, role.Admin); err != nil {
		return nil, err
	}

	posting, err := u.postings.FindByID(ctx, jobPostingID)
	if err != nil {
		if errors.Is(err, repository.ErrJobPostingNotFound) {
			return nil, apperr.NotFound(apperr.EntityJobPosting)
		}
		return nil, err
	}

	scoped, _ := role.Match(current.Role, true, true, false)
	if scoped {
		org := uuid.Nil
		if current.OrganizationID != nil {
			org = *current.OrganizationID
		}
		if err := authz.AssertOwnership(org, posting.OrganizationID); err != nil {
			return nil, err
		}
	}

	return u.applications.ListByJobPosting(ctx, jobPostingID)
}
