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
)

type CandidateUsecase interface {
	GetProfile(ctx context.Context, viewer user.Context, candidateID uuid.UUID) (application.CandidatePublicProfile, error)
}

type Candidates struct {
	users        user.Repository
	applications repository.ApplicationRepository
}

func NewCandidateUsecase(users user.Repository, applications repository.ApplicationRepository) *Candidates {
	return &Candidates{users: users, applications: applications}
}

func (u *Candidates) GetProfile(ctx context.Context, viewer user.Context, candidateID uuid.UUID) (application.CandidatePublicProfile, error) {
	if err := authz.AssertCanViewCandidate(ctx, viewer.Role, candidateID, u.reachableFrom(viewer)); err != nil {
		return application.CandidatePublicProfile{}, err
	}

	p, err := u.users.GetProfile(ctx, candidateID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return application.CandidatePublicProfile{}, apperr.NotFound(apperr.EntityCandidate)
		}
		return application.CandidatePublicProfile{}, err
	}

	return application.CandidatePublicProfile{
		ID:          p.UserID,
		DisplayName: p.DisplayName,
		Headline:    p.Headline,
		Location:    p.Location,
	}, nil
}

// reachableFrom: admins see everyone, recruiters see candidates who applied
// to one of their organization's postings.
func (u *Candidates) reachableFrom(viewer user.Context) authz.ReachabilityChecker {
	return func(ctx context.Context, candidateID uuid.UUID) (bool, error) {
		viaOrg, _ := role.Match(viewer.Role, false, true, false)
		if !viaOrg {
			isAdmin, _ := role.Match(viewer.Role, false, false, true)
			return isAdmin, nil
		}
		if viewer.OrganizationID == nil {
			return false, nil
		}
		return u.applications.OrganizationHasApplicationFrom(ctx, *viewer.OrganizationID, candidateID)
	}
}
