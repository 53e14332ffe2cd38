package seeder

import (
	"context"

	"job-board/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name"); err != nil {
		return err
	}

	names := []string{
		"Go", "TypeScript", "Python", "PostgreSQL", "Redis",
		"Docker", "Kubernetes", "AWS", "Figma", "SQL",
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, n := range names {
			if _, err := tx.Exec(ctx,
				`INSERT INTO skills (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, n,
			); err != nil {
				return err
			}
		}
		return nil
	})
}
