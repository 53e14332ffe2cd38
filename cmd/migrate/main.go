package main

import (
	"context"
	"flag"
	"time"

	"job-board/internal/app"
	"job-board/internal/config"
	"job-board/internal/database/migration"
	dbpostgres "job-board/internal/database/postgres"
	"job-board/internal/database/seeder"
	"job-board/internal/infrastructure/persistence/postgres"
	"job-board/migrations"
)

func main() {
	seed := flag.Bool("seed", false, "insert reference data after migrating")
	dir := flag.String("dir", "", "read migrations from this directory instead of the embedded files")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := app.NewLogger(cfg)

	pg, err := postgres.Connect(cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("[Migrate] connect failed")
	}
	defer func() {
		_ = pg.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	r := migration.Runner{FS: migrations.FS, Logger: logger}
	if *dir != "" {
		r = migration.Runner{Dir: *dir, Logger: logger}
	}
	if err := r.Run(ctx, pg.SQLDB()); err != nil {
		logger.WithError(err).Fatal("[Migrate] migration failed")
	}
	logger.Info("[Migrate] schema up to date")

	if !*seed {
		return
	}

	db, err := dbpostgres.Connect(ctx, cfg.Database, logger)
	if err != nil {
		logger.WithError(err).Fatal("[Migrate] connect pool failed")
	}
	defer func() {
		_ = db.Close()
	}()

	if err := (seeder.Runner{Seeders: seeder.Defaults(), Logger: logger}).Run(ctx, db); err != nil {
		logger.WithError(err).Fatal("[Migrate] seeding failed")
	}
	logger.Info("[Migrate] seed data applied")
}
