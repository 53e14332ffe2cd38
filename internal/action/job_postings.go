package action

import (
	"context"
	"net/url"
	"strings"

	"job-board/internal/domain/job"
	"job-board/internal/querystate"
	"job-board/internal/usecase"

	"github.com/google/uuid"
)

const JobPostingsPath = "/api/v1/job-postings"

type QueryView struct {
	Search   string          `json:"search,omitempty"`
	FamilyID string          `json:"familyId,omitempty"`
	Sort     querystate.Sort `json:"sort"`
	Page     int             `json:"page"`
}

type JobPostingList struct {
	usecase.Page[job.Posting]
	Query    QueryView `json:"query"`
	Href     string    `json:"href"`
	PrevHref *string   `json:"prevHref"`
	NextHref *string   `json:"nextHref"`
}

// ListJobPostings serves the query-state surface. Invalid values are dropped,
// never rejected, so this action only fails on storage errors.
func (a *Actions) ListJobPostings(ctx context.Context, query url.Values) (Result[JobPostingList], error) {
	return run(ctx, a, "listJobPostings", inputInvalid, func(ctx context.Context) (JobPostingList, error) {
		state := querystate.Parse(query)

		familyID, err := uuid.Parse(state.FamilyID)
		if err != nil {
			familyID = uuid.Nil
			state.FamilyID = ""
		}

		page, err := a.d.JobPostings.List(ctx, usecase.ListJobPostingsParams{
			Search:   state.Search,
			FamilyID: familyID,
			Sort:     querystate.EffectiveSort(state),
			Page:     querystate.EffectivePage(state),
			PageSize: querystate.DefaultPageSize,
		})
		if err != nil {
			return JobPostingList{}, err
		}

		out := JobPostingList{
			Page: page,
			Query: QueryView{
				Search:   state.Search,
				FamilyID: state.FamilyID,
				Sort:     querystate.EffectiveSort(state),
				Page:     querystate.EffectivePage(state),
			},
			Href: querystate.BuildHref(JobPostingsPath, state),
		}
		current := querystate.EffectivePage(state)
		if current > 1 {
			prev := current - 1
			href := querystate.BuildHref(JobPostingsPath, querystate.ApplyPatch(state, querystate.Patch{Page: &prev}, querystate.Options{}))
			out.PrevHref = &href
		}
		if current < page.TotalPages() {
			next := current + 1
			href := querystate.BuildHref(JobPostingsPath, querystate.ApplyPatch(state, querystate.Patch{Page: &next}, querystate.Options{}))
			out.NextHref = &href
		}
		return out, nil
	})
}

type FilterJobPostingsInput struct {
	JobID           string `json:"jobId" validate:"omitempty,uuid"`
	EmploymentType  string `json:"employmentType" validate:"omitempty,oneof=full_time part_time intern freelance"`
	WorkArrangement string `json:"workArrangement" validate:"omitempty,oneof=onsite hybrid remote"`
	Page            *int   `json:"page" validate:"omitempty,gte=1"`
	PageSize        *int   `json:"pageSize" validate:"omitempty,gte=1,lte=50"`
}

// FilterJobPostings serves the strict filter surface; bad input is reported
// as FILTER_INVALID.
func (a *Actions) FilterJobPostings(ctx context.Context, query url.Values) (Result[usecase.Page[job.Posting]], error) {
	return run(ctx, a, "filterJobPostings", filterInvalid, func(ctx context.Context) (usecase.Page[job.Posting], error) {
		issues := &ValidationError{}
		in := FilterJobPostingsInput{
			JobID:           strings.ToLower(first(query, "jobId")),
			EmploymentType:  first(query, "employmentType"),
			WorkArrangement: first(query, "workArrangement"),
			Page:            optionalInt(query, "page", issues),
			PageSize:        optionalInt(query, "pageSize", issues),
		}
		if err := issues.orNil(); err != nil {
			return usecase.Page[job.Posting]{}, err
		}
		if err := validate.Struct(in); err != nil {
			return usecase.Page[job.Posting]{}, err
		}

		params := usecase.ListJobPostingsParams{
			EmploymentType:  job.EmploymentType(in.EmploymentType),
			WorkArrangement: job.WorkArrangement(in.WorkArrangement),
			Sort:            querystate.DefaultSort,
			Page:            1,
			PageSize:        querystate.DefaultPageSize,
		}
		if in.JobID != "" {
			id, err := uuid.Parse(in.JobID)
			if err != nil {
				return usecase.Page[job.Posting]{}, &ValidationError{Issues: []string{"jobId must be a valid UUID"}}
			}
			params.JobID = id
		}
		if in.Page != nil {
			params.Page = *in.Page
		}
		if in.PageSize != nil {
			params.PageSize = *in.PageSize
		}
		return a.d.JobPostings.List(ctx, params)
	})
}

func (a *Actions) GetJobPosting(ctx context.Context, id string) (Result[job.Posting], error) {
	return run(ctx, a, "getJobPosting", inputInvalid, func(ctx context.Context) (job.Posting, error) {
		postingID, err := parseID(id)
		if err != nil {
			return job.Posting{}, err
		}
		return a.d.JobPostings.Get(ctx, postingID)
	})
}
