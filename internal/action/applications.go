package action

import (
	"context"
	"strings"

	"job-board/internal/domain/application"

	"github.com/google/uuid"
)

const (
	MyApplicationsPath = "/api/v1/applications/me"
)

func postingApplicationsPath(id uuid.UUID) string {
	return JobPostingsPath + "/" + id.String() + "/applications"
}

type CreateApplicationInput struct {
	JdID string `json:"jdId" validate:"required,uuid"`
}

func (a *Actions) CreateApplication(ctx context.Context, in CreateApplicationInput) (Result[Empty], error) {
	return run(ctx, a, "createApplication", inputInvalid, func(ctx context.Context) (Empty, error) {
		current, err := a.currentUser(ctx)
		if err != nil {
			return Empty{}, err
		}

		in.JdID = strings.ToLower(strings.TrimSpace(in.JdID))
		if err := validate.Struct(in); err != nil {
			return Empty{}, err
		}
		postingID, err := uuid.Parse(in.JdID)
		if err != nil {
			return Empty{}, &ValidationError{Issues: []string{"jdId must be a valid UUID"}}
		}

		if _, err := a.d.Applications.Create(ctx, current, postingID); err != nil {
			return Empty{}, err
		}
		a.revalidate(ctx, MyApplicationsPath, postingApplicationsPath(postingID))
		return Empty{}, nil
	})
}

func (a *Actions) WithdrawApplication(ctx context.Context, id string) (Result[Empty], error) {
	return run(ctx, a, "withdrawApplication", inputInvalid, func(ctx context.Context) (Empty, error) {
		current, err := a.currentUser(ctx)
		if err != nil {
			return Empty{}, err
		}
		applicationID, err := parseID(id)
		if err != nil {
			return Empty{}, err
		}

		if err := a.d.Applications.Withdraw(ctx, current, applicationID); err != nil {
			return Empty{}, err
		}
		a.revalidate(ctx, MyApplicationsPath)
		return Empty{}, nil
	})
}

func (a *Actions) ListMyApplications(ctx context.Context) (Result[[]application.WithPosting], error) {
	return run(ctx, a, "listMyApplications", inputInvalid, func(ctx context.Context) ([]application.WithPosting, error) {
		current, err := a.currentUser(ctx)
		if err != nil {
			return nil, err
		}
		return a.d.Applications.ListMine(ctx, current)
	})
}

func (a *Actions) ListApplicationsForJobPosting(ctx context.Context, postingID string) (Result[[]application.WithCandidate], error) {
	return run(ctx, a, "listApplicationsForJobPosting", inputInvalid, func(ctx context.Context) ([]application.WithCandidate, error) {
		current, err := a.currentUser(ctx)
		if err != nil {
			return nil, err
		}
		id, err := parseID(postingID)
		if err != nil {
			return nil, err
		}
		return a.d.Applications.ListForJobPosting(ctx, current, id)
	})
}

func (a *Actions) GetCandidateProfile(ctx context.Context, candidateID string) (Result[application.CandidatePublicProfile], error) {
	return run(ctx, a, "getCandidateProfile", inputInvalid, func(ctx context.Context) (application.CandidatePublicProfile, error) {
		current, err := a.currentUser(ctx)
		if err != nil {
			return application.CandidatePublicProfile{}, err
		}
		id, err := parseID(candidateID)
		if err != nil {
			return application.CandidatePublicProfile{}, err
		}
		return a.d.Candidates.GetProfile(ctx, current, id)
	})
}
