package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"job-board/internal/domain/job"
	"job-board/internal/querystate"

	"github.com/google/uuid"
)

func TestBuildJobPostingWhere_Empty(t *testing.T) {
	where, args := buildJobPostingWhere(JobPostingFilter{Search: "   "})
	if where != "" || len(args) != 0 {
		t.Fatalf("expected no conditions, got %q %v", where, args)
	}
}

func TestBuildJobPostingWhere_AllFilters(t *testing.T) {
	jobID := uuid.New()
	famID := uuid.New()

	where, args := buildJobPostingWhere(JobPostingFilter{
		JobID:           jobID,
		FamilyID:        famID,
		EmploymentType:  job.EmploymentIntern,
		WorkArrangement: job.WorkRemote,
		Search:          " 100%_dev ",
	})

	for _, frag := range []string{
		"jp.job_id = $1",
		"j.job_family_id = $2",
		"jp.employment_type = $3",
		"jp.work_arrangement = $4",
		"jp.title ILIKE '%' || $5 || '%'",
	} {
		if !strings.Contains(where, frag) {
			t.Fatalf("missing %q in %q", frag, where)
		}
	}
	if len(args) != 5 {
		t.Fatalf("expected 5 args, got %d", len(args))
	}
	if args[0] != jobID || args[1] != famID || args[2] != "intern" || args[3] != "remote" {
		t.Fatalf("unexpected args: %v", args)
	}
	if args[4] != `100\%\_dev` {
		t.Fatalf("expected escaped search, got %v", args[4])
	}
}

func TestJobPostingOrder(t *testing.T) {
	if got := jobPostingOrder(querystate.SortCreatedDesc); got != "jp.created_at DESC, jp.id DESC" {
		t.Fatalf("created order: %s", got)
	}
	if got := jobPostingOrder(""); got != "jp.updated_at DESC, jp.id DESC" {
		t.Fatalf("default order: %s", got)
	}
}

func postingRow(id uuid.UUID, title string) []any {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	return []any{
		id, uuid.New(), title, "full_time", "hybrid",
		int64(1000), nil, "IDR", nil, true,
		"desc", now, now,
		uuid.New(), "Backend Engineer", uuid.New(), "Engineering",
	}
}

func TestPostgresJobPostingRepository_ListAttachesSkills(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	db := newFakeDB().
		on("FROM job_postings jp", postingRow(a, "Go Engineer"), postingRow(b, "Data Engineer")).
		on("FROM job_posting_skills", []any{a, "Go"}, []any{a, "PostgreSQL"})

	repo := NewPostgresJobPostingRepository(db)
	items, err := repo.List(context.Background(), JobPostingFilter{Search: "engineer", Limit: 500, Offset: 20})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if len(items[0].Skills) != 2 || items[0].Skills[0] != "Go" {
		t.Fatalf("unexpected skills: %v", items[0].Skills)
	}
	if items[1].Skills == nil || len(items[1].Skills) != 0 {
		t.Fatalf("expected empty skills slice, got %v", items[1].Skills)
	}
	if items[0].Salary.Min == nil || *items[0].Salary.Min != 1000 || items[0].Salary.Max != nil {
		t.Fatalf("unexpected salary: %+v", items[0].Salary)
	}
	if items[0].EmploymentType != job.EmploymentFullTime || items[0].WorkArrangement != job.WorkHybrid {
		t.Fatalf("unexpected enums: %+v", items[0])
	}

	listCall := db.calls[0]
	if !strings.Contains(listCall.query, "LIMIT $2 OFFSET $3") {
		t.Fatalf("unexpected placeholders: %s", listCall.query)
	}
	if listCall.args[1] != querystate.MaxPageSize || listCall.args[2] != 20 {
		t.Fatalf("expected clamped limit and offset, got %v", listCall.args)
	}
}

func TestPostgresJobPostingRepository_FindByIDNotFound(t *testing.T) {
	repo := NewPostgresJobPostingRepository(newFakeDB())
	if _, err := repo.FindByID(context.Background(), uuid.New()); err != ErrJobPostingNotFound {
		t.Fatalf("expected ErrJobPostingNotFound, got %v", err)
	}
}

func TestPostgresJobPostingRepository_ListRejectsNegativeOffset(t *testing.T) {
	db := newFakeDB()
	_, err := NewPostgresJobPostingRepository(db).List(context.Background(), JobPostingFilter{Offset: -20})
	if err != ErrNegativeOffset {
		t.Fatalf("expected ErrNegativeOffset, got %v", err)
	}
	if len(db.calls) != 0 {
		t.Fatalf("expected no query, got %d", len(db.calls))
	}
}
