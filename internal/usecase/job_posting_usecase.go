package usecase

import (
	"context"
	"errors"

	"job-board/internal/domain/apperr"
	"job-board/internal/domain/job"
	"job-board/internal/querystate"
	"job-board/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type ListJobPostingsParams struct {
	JobID           uuid.UUID
	FamilyID        uuid.UUID
	EmploymentType  job.EmploymentType
	WorkArrangement job.WorkArrangement
	Search          string
	Sort            querystate.Sort
	Page            int
	PageSize        int
}

type JobPostingUsecase interface {
	List(ctx context.Context, params ListJobPostingsParams) (Page[job.Posting], error)
	Get(ctx context.Context, id uuid.UUID) (job.Posting, error)
}

type JobPostings struct {
	postings repository.JobPostingRepository
	logger   logrus.FieldLogger
}

func NewJobPostingUsecase(postings repository.JobPostingRepository, logger logrus.FieldLogger) *JobPostings {
	return &JobPostings{postings: postings, logger: logger}
}

// List runs the page query and the count query concurrently.
func (u *JobPostings) List(ctx context.Context, params ListJobPostingsParams) (Page[job.Posting], error) {
	page, pageSize := normalizePage(params.Page, params.PageSize)
	skip, take := querystate.Pagination(page, pageSize)

	sort := params.Sort
	if !sort.Valid() {
		sort = querystate.DefaultSort
	}

	f := repository.JobPostingFilter{
		JobID:           params.JobID,
		FamilyID:        params.FamilyID,
		EmploymentType:  params.EmploymentType,
		WorkArrangement: params.WorkArrangement,
		Search:          params.Search,
		Sort:            sort,
		Limit:           take,
		Offset:          skip,
	}

	var (
		items []job.Posting
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = u.postings.List(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = u.postings.Count(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		if u.logger != nil {
			u.logger.WithError(err).Error("[JobPostings] list failed")
		}
		return Page[job.Posting]{}, err
	}

	return Page[job.Posting]{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

func (u *JobPostings) Get(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	p, err := u.postings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobPostingNotFound) {
			return job.Posting{}, apperr.NotFound(apperr.EntityJobPosting)
		}
		return job.Posting{}, err
	}
	return p, nil
}
