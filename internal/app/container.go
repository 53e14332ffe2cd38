package app

import (
	"context"
	"errors"
	"time"

	"job-board/internal/action"
	"job-board/internal/analytics"
	"job-board/internal/config"
	"job-board/internal/database"
	dbpostgres "job-board/internal/database/postgres"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/i18n"
	"job-board/internal/infrastructure/cache"
	"job-board/internal/infrastructure/persistence/postgres"
	"job-board/internal/metrics"
	"job-board/internal/pkg/jwt"
	"job-board/internal/repository"
	"job-board/internal/usecase"
	"job-board/internal/ws"

	"github.com/sirupsen/logrus"
)

type Container struct {
	Config config.Config
	Logger logrus.FieldLogger

	DB      database.DB
	Users   *postgres.UserRepository
	Cache   *cache.Redis
	Metrics *metrics.Metrics
	Hub     *ws.Hub
	I18n    *i18n.Bundle
	JWT     jwt.Service

	Actions     *action.Actions
	Analytics   *analytics.Factory
	RateLimiter *middleware.RateLimiter
}

func NewContainer(cfg config.Config, logger logrus.FieldLogger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bundle, err := i18n.Load(cfg.I18n.DefaultLocale)
	if err != nil {
		return nil, err
	}

	db, err := dbpostgres.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	users, err := postgres.NewUserRepository(postgres.Wrap(db.SQLDB()))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	c := &Container{
		Config:      cfg,
		Logger:      logger,
		DB:          db,
		Users:       users,
		Cache:       cache.NewRedis(cfg.Redis, logger),
		Metrics:     metrics.New(),
		Hub:         ws.NewHub(logger),
		I18n:        bundle,
		RateLimiter: middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
		JWT: jwt.NewHMACService(
			cfg.App.AppName,
			cfg.JWT.AccessSecret,
			cfg.JWT.RefreshSecret,
			cfg.JWT.AccessExpiresIn,
			cfg.JWT.RefreshExpiresIn,
		),
	}

	c.Analytics = analytics.NewFactory(
		analytics.NewRedisSink(c.Cache.Client(), cfg.Analytics.Channel),
		cfg.Analytics.Enabled,
		cfg.Analytics.QueueSize,
		logger,
	)

	postings := repository.NewPostgresJobPostingRepository(db)
	applications := repository.NewPostgresApplicationRepository(db)
	announcements := repository.NewPostgresAnnouncementRepository(db)

	c.Actions = action.New(action.Deps{
		JobPostings:   usecase.NewJobPostingUsecase(postings, logger),
		Announcements: usecase.NewAnnouncementUsecase(announcements, logger),
		Applications:  usecase.NewApplicationUsecase(applications, postings, logger),
		Candidates:    usecase.NewCandidateUsecase(users, applications),
		Users:         usecase.NewUserUsecase(users),
		Auth:          usecase.NewAuthUsecase(users, c.JWT, logger),
		Revalidator:   cache.NewRevalidator(c.Cache, c.Hub, logger),
		Recorder:      c.Metrics,
		Logger:        logger,
	})

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.Users != nil {
		errs = append(errs, c.Users.Close())
	}
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
