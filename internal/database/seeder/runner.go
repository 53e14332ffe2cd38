package seeder

import (
	"context"
	"fmt"

	"job-board/internal/database"

	"github.com/sirupsen/logrus"
)

type Runner struct {
	Seeders []Seeder
	Logger  logrus.FieldLogger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		if r.Logger != nil {
			r.Logger.WithField("seeder", s.Name()).Info("[Seeder] done")
		}
	}
	return nil
}
