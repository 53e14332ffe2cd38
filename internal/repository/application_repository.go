package repository

import (
	"context"
	"errors"

	"job-board/internal/database"
	"job-board/internal/database/postgres"
	"job-board/internal/domain/application"
	"job-board/internal/domain/job"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationExists   = errors.New("active application exists")
)

type ApplicationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (application.Application, error)
	ExistsActive(ctx context.Context, candidateID, jobPostingID uuid.UUID) (bool, error)
	Create(ctx context.Context, a application.Application) (application.Application, error)
	// UpdateStatusIf moves the application to next only while it is in from.
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, next application.Status) (bool, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]application.WithPosting, error)
	ListByJobPosting(ctx context.Context, jobPostingID uuid.UUID) ([]application.WithCandidate, error)
	OrganizationHasApplicationFrom(ctx context.Context, organizationID, candidateID uuid.UUID) (bool, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `a.id, a.candidate_id, a.job_posting_id, a.status, a.created_at, a.updated_at`

func (r *PostgresApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications a WHERE a.id = $1`, id)

	var a application.Application
	if err := scanApplication(row, &a); err != nil {
		if postgres.IsNoRows(err) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) ExistsActive(ctx context.Context, candidateID, jobPostingID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM applications
			WHERE candidate_id = $1 AND job_posting_id = $2 AND status <> $3
		)`,
		candidateID, jobPostingID, string(application.StatusWithdrawn),
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = application.StatusApplied
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO applications (id, candidate_id, job_posting_id, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		a.ID, a.CandidateID, a.JobPostingID, string(a.Status),
	)
	if err := row.Scan(&a.CreatedAt, &a.UpdatedAt); err != nil {
		if postgres.IsUniqueViolation(err) {
			return application.Application{}, ErrApplicationExists
		}
		return application.Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, next application.Status) (bool, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $3, updated_at = now()
		 WHERE id = $1 AND status = $2`,
		id, string(from), string(next),
	)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PostgresApplicationRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]application.WithPosting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+`,
			jp.id, jp.title, jp.employment_type, jp.work_arrangement, jp.organization_id
		 FROM applications a
		 JOIN job_postings jp ON jp.id = a.job_posting_id
		 WHERE a.candidate_id = $1
		 ORDER BY a.created_at DESC, a.id DESC`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.WithPosting, 0)
	for rows.Next() {
		var it application.WithPosting
		var status, et, wa string
		if err := rows.Scan(
			&it.ID, &it.CandidateID, &it.JobPostingID, &status, &it.CreatedAt, &it.UpdatedAt,
			&it.JobPosting.ID, &it.JobPosting.Title, &et, &wa, &it.JobPosting.OrganizationID,
		); err != nil {
			return nil, err
		}
		it.Status = application.Status(status)
		it.JobPosting.EmploymentType = job.EmploymentType(et)
		it.JobPosting.WorkArrangement = job.WorkArrangement(wa)
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) ListByJobPosting(ctx context.Context, jobPostingID uuid.UUID) ([]application.WithCandidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+`,
			u.id, COALESCE(cp.display_name, ''), cp.headline, cp.location
		 FROM applications a
		 JOIN users u ON u.id = a.candidate_id
		 LEFT JOIN candidate_profiles cp ON cp.user_id = u.id
		 WHERE a.job_posting_id = $1
		 ORDER BY a.created_at DESC, a.id DESC`,
		jobPostingID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.WithCandidate, 0)
	for rows.Next() {
		var it application.WithCandidate
		var status string
		if err := rows.Scan(
			&it.ID, &it.CandidateID, &it.JobPostingID, &status, &it.CreatedAt, &it.UpdatedAt,
			&it.Candidate.ID, &it.Candidate.DisplayName, &it.Candidate.Headline, &it.Candidate.Location,
		); err != nil {
			return nil, err
		}
		it.Status = application.Status(status)
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) OrganizationHasApplicationFrom(ctx context.Context, organizationID, candidateID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM applications a
			JOIN job_postings jp ON jp.id = a.job_posting_id
			WHERE jp.organization_id = $1 AND a.candidate_id = $2
		)`,
		organizationID, candidateID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func scanApplication(row database.Row, a *application.Application) error {
	var status string
	if err := row.Scan(&a.ID, &a.CandidateID, &a.JobPostingID, &status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return err
	}
	a.Status = application.Status(status)
	return nil
}
