package seeder

import (
	"context"

	"job-board/internal/database"
)

// Seeder inserts reference data. Seeders must be idempotent.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
