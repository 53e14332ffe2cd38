package repository

import (
	"context"
	"errors"

	"job-board/internal/database"
	"job-board/internal/database/postgres"
	"job-board/internal/domain/announcement"
	"job-board/internal/querystate"

	"github.com/google/uuid"
)

var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
)

type AnnouncementRepository interface {
	List(ctx context.Context, limit, offset int) ([]announcement.Announcement, error)
	Count(ctx context.Context) (int, error)
	FindByID(ctx context.Context, id uuid.UUID) (announcement.Announcement, error)
	// ListRefs returns every announcement in listing order.
	ListRefs(ctx context.Context) ([]announcement.Ref, error)
}

type PostgresAnnouncementRepository struct {
	db database.DB
}

func NewPostgresAnnouncementRepository(db database.DB) *PostgresAnnouncementRepository {
	return &PostgresAnnouncementRepository{db: db}
}

const announcementOrder = `ORDER BY pinned DESC, created_at DESC, id DESC`

func (r *PostgresAnnouncementRepository) List(ctx context.Context, limit, offset int) ([]announcement.Announcement, error) {
	if limit <= 0 {
		limit = querystate.DefaultPageSize
	}
	if limit > querystate.MaxPageSize {
		limit = querystate.MaxPageSize
	}
	if offset < 0 {
		return nil, ErrNegativeOffset
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, title, content, pinned, created_at, updated_at
		 FROM announcements
		 `+announcementOrder+`
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]announcement.Announcement, 0)
	for rows.Next() {
		var a announcement.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.Pinned, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresAnnouncementRepository) Count(ctx context.Context) (int, error) {
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM announcements`)
	var c int
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresAnnouncementRepository) FindByID(ctx context.Context, id uuid.UUID) (announcement.Announcement, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, content, pinned, created_at, updated_at FROM announcements WHERE id = $1`,
		id,
	)
	var a announcement.Announcement
	if err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Pinned, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if postgres.IsNoRows(err) {
			return announcement.Announcement{}, ErrAnnouncementNotFound
		}
		return announcement.Announcement{}, err
	}
	return a, nil
}

func (r *PostgresAnnouncementRepository) ListRefs(ctx context.Context) ([]announcement.Ref, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, pinned, created_at FROM announcements `+announcementOrder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]announcement.Ref, 0)
	for rows.Next() {
		var ref announcement.Ref
		if err := rows.Scan(&ref.ID, &ref.Title, &ref.Pinned, &ref.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
