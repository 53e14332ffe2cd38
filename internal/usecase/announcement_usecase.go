package usecase

import (
	"context"
	"errors"

	"job-board/internal/domain/announcement"
	"job-board/internal/domain/apperr"
	"job-board/internal/querystate"
	"job-board/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type AnnouncementUsecase interface {
	List(ctx context.Context, page, pageSize int) (Page[announcement.Announcement], error)
	Get(ctx context.Context, id uuid.UUID) (announcement.Announcement, error)
	Neighbors(ctx context.Context, id uuid.UUID) (announcement.Neighbors, error)
}

type Announcements struct {
	announcements repository.AnnouncementRepository
	logger        logrus.FieldLogger
}

func NewAnnouncementUsecase(announcements repository.AnnouncementRepository, logger logrus.FieldLogger) *Announcements {
	return &Announcements{announcements: announcements, logger: logger}
}

func (u *Announcements) List(ctx context.Context, page, pageSize int) (Page[announcement.Announcement], error) {
	page, pageSize = normalizePage(page, pageSize)
	skip, take := querystate.Pagination(page, pageSize)

	var (
		items []announcement.Announcement
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = u.announcements.List(gctx, take, skip)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = u.announcements.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if u.logger != nil {
			u.logger.WithError(err).Error("[Announcements] list failed")
		}
		return Page[announcement.Announcement]{}, err
	}

	return Page[announcement.Announcement]{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

func (u *Announcements) Get(ctx context.Context, id uuid.UUID) (announcement.Announcement, error) {
	a, err := u.announcements.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAnnouncementNotFound) {
			return announcement.Announcement{}, apperr.NotFound(apperr.EntityAnnouncement)
		}
		return announcement.Announcement{}, err
	}
	return a, nil
}

// Neighbors scans the full ordered list so that prev/next always match the
// order users see. Linear in the number of announcements.
func (u *Announcements) Neighbors(ctx context.Context, id uuid.UUID) (announcement.Neighbors, error) {
	refs, err := u.announcements.ListRefs(ctx)
	if err != nil {
		return announcement.Neighbors{}, err
	}

	idx := -1
	for i := range refs {
		if refs[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return announcement.Neighbors{}, apperr.NotFound(apperr.EntityAnnouncement)
	}

	var n announcement.Neighbors
	if idx > 0 {
		before := refs[idx-1]
		n.Before = &before
	}
	if idx < len(refs)-1 {
		next := refs[idx+1]
		n.Next = &next
	}
	return n, nil
}
