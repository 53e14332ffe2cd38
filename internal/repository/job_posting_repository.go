package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"job-board/internal/database"
	"job-board/internal/database/postgres"
	"job-board/internal/domain/job"
	"job-board/internal/querystate"

	"github.com/google/uuid"
)

var (
	ErrJobPostingNotFound = errors.New("job posting not found")
	ErrNegativeOffset     = errors.New("negative offset")
)

// JobPostingFilter narrows a listing. Zero values are ignored.
type JobPostingFilter struct {
	JobID           uuid.UUID
	FamilyID        uuid.UUID
	EmploymentType  job.EmploymentType
	WorkArrangement job.WorkArrangement
	Search          string
	Sort            querystate.Sort
	Limit           int
	Offset          int
}

type JobPostingRepository interface {
	List(ctx context.Context, f JobPostingFilter) ([]job.Posting, error)
	Count(ctx context.Context, f JobPostingFilter) (int, error)
	FindByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresJobPostingRepository struct {
	db database.DB
}

func NewPostgresJobPostingRepository(db database.DB) *PostgresJobPostingRepository {
	return &PostgresJobPostingRepository{db: db}
}

const jobPostingColumns = `jp.id, jp.organization_id, jp.title, jp.employment_type, jp.work_arrangement,
	jp.salary_min, jp.salary_max, jp.salary_currency, jp.salary_period, jp.salary_negotiable,
	jp.description, jp.created_at, jp.updated_at,
	j.id, j.name, f.id, f.name`

const jobPostingFrom = `FROM job_postings jp
	JOIN jobs j ON j.id = jp.job_id
	JOIN job_families f ON f.id = j.job_family_id`

func (r *PostgresJobPostingRepository) List(ctx context.Context, f JobPostingFilter) ([]job.Posting, error) {
	where, args := buildJobPostingWhere(f)

	limit := f.Limit
	if limit <= 0 {
		limit = querystate.DefaultPageSize
	}
	if limit > querystate.MaxPageSize {
		limit = querystate.MaxPageSize
	}
	if f.Offset < 0 {
		return nil, ErrNegativeOffset
	}
	args = append(args, limit, f.Offset)

	q := fmt.Sprintf(`SELECT %s %s %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		jobPostingColumns, jobPostingFrom, where, jobPostingOrder(f.Sort), len(args)-1, len(args))

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanJobPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachSkills(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobPostingRepository) Count(ctx context.Context, f JobPostingFilter) (int, error) {
	where, args := buildJobPostingWhere(f)
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) `+jobPostingFrom+` `+where, args...)
	var c int
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresJobPostingRepository) FindByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobPostingColumns+` `+jobPostingFrom+` WHERE jp.id = $1`, id)
	p, err := scanJobPosting(row)
	if err != nil {
		if postgres.IsNoRows(err) {
			return job.Posting{}, ErrJobPostingNotFound
		}
		return job.Posting{}, err
	}

	items := []job.Posting{p}
	if err := r.attachSkills(ctx, items); err != nil {
		return job.Posting{}, err
	}
	return items[0], nil
}

func (r *PostgresJobPostingRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM job_postings WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// attachSkills loads skill names for all postings in one query.
func (r *PostgresJobPostingRepository) attachSkills(ctx context.Context, items []job.Posting) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}

	rows, err := r.db.Query(ctx,
		`SELECT jps.job_posting_id, s.name
		 FROM job_posting_skills jps
		 JOIN skills s ON s.id = jps.skill_id
		 WHERE jps.job_posting_id = ANY($1)
		 ORDER BY s.name ASC`,
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	byID := map[uuid.UUID][]string{}
	for rows.Next() {
		var id uuid.UUID
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return err
		}
		byID[id] = append(byID[id], name)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range items {
		skills := byID[items[i].ID]
		if skills == nil {
			skills = []string{}
		}
		items[i].Skills = skills
	}
	return nil
}

func buildJobPostingWhere(f JobPostingFilter) (string, []any) {
	conds := make([]string, 0, 5)
	args := make([]any, 0, 5)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.JobID != uuid.Nil {
		add("jp.job_id = $%d", f.JobID)
	}
	if f.FamilyID != uuid.Nil {
		add("j.job_family_id = $%d", f.FamilyID)
	}
	if f.EmploymentType != "" {
		add("jp.employment_type = $%d", string(f.EmploymentType))
	}
	if f.WorkArrangement != "" {
		add("jp.work_arrangement = $%d", string(f.WorkArrangement))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		add(`jp.title ILIKE '%%' || $%d || '%%' ESCAPE '\'`, escapeLike(s))
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// jobPostingOrder always ends on id so pages never overlap on equal timestamps.
func jobPostingOrder(s querystate.Sort) string {
	switch s {
	case querystate.SortCreatedDesc:
		return "jp.created_at DESC, jp.id DESC"
	default:
		return "jp.updated_at DESC, jp.id DESC"
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

func scanJobPosting(row database.Row) (job.Posting, error) {
	var p job.Posting
	var et, wa string
	err := row.Scan(
		&p.ID, &p.OrganizationID, &p.Title, &et, &wa,
		&p.Salary.Min, &p.Salary.Max, &p.Salary.Currency, &p.Salary.Period, &p.Salary.Negotiable,
		&p.Description, &p.CreatedAt, &p.UpdatedAt,
		&p.Job.ID, &p.Job.Name, &p.Job.Family.ID, &p.Job.Family.Name,
	)
	if err != nil {
		return job.Posting{}, err
	}
	p.EmploymentType = job.EmploymentType(et)
	p.WorkArrangement = job.WorkArrangement(wa)
	return p, nil
}
