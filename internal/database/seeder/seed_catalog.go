package seeder

import (
	"context"

	"job-board/internal/database"
)

type OrganizationsSeeder struct{}

func (OrganizationsSeeder) Name() string { return "organizations" }

func (OrganizationsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "organizations", "id", "name"); err != nil {
		return err
	}
	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, n := range []string{"Acme", "Globex"} {
			if _, err := tx.Exec(ctx,
				`INSERT INTO organizations (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, n,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

type AnnouncementsSeeder struct{}

func (AnnouncementsSeeder) Name() string { return "announcements" }

func (AnnouncementsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "announcements", "id", "title", "content", "pinned"); err != nil {
		return err
	}

	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(1) FROM announcements`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []struct {
		Title   string
		Content string
		Pinned  bool
	}{
		{Title: "Welcome to the job board", Content: "Browse postings and apply in one click.", Pinned: true},
		{Title: "Scheduled maintenance", Content: "The service will be read-only on Sunday 02:00-03:00 UTC."},
	}
	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, it := range items {
			if _, err := tx.Exec(ctx,
				`INSERT INTO announcements (title, content, pinned) VALUES ($1, $2, $3)`,
				it.Title, it.Content, it.Pinned,
			); err != nil {
				return err
			}
		}
		return nil
	})
}
