package seeder

import (
	"context"

	"job-board/internal/database"
)

type JobFamiliesSeeder struct{}

func (JobFamiliesSeeder) Name() string { return "job_families" }

func (JobFamiliesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "job_families", "id", "name"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "job_family_id", "name"); err != nil {
		return err
	}

	families := map[string][]string{
		"Engineering": {"Backend Engineer", "Frontend Engineer", "Site Reliability Engineer"},
		"Data":        {"Data Engineer", "Data Analyst"},
		"Design":      {"Product Designer"},
		"Business":    {"Sales", "Customer Success"},
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for family, jobs := range families {
			if _, err := tx.Exec(ctx,
				`INSERT INTO job_families (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, family,
			); err != nil {
				return err
			}
			for _, j := range jobs {
				if _, err := tx.Exec(ctx,
					`INSERT INTO jobs (job_family_id, name)
					 SELECT id, $2 FROM job_families WHERE name = $1
					 ON CONFLICT (job_family_id, name) DO NOTHING`,
					family, j,
				); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
