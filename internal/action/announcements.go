package action

import (
	"context"
	"net/url"

	"job-board/internal/domain/announcement"
	"job-board/internal/usecase"
)

const AnnouncementsPath = "/api/v1/announcements"

type ListAnnouncementsInput struct {
	Page     *int `json:"page" validate:"omitempty,gte=1"`
	PageSize *int `json:"pageSize" validate:"omitempty,gte=1,lte=50"`
}

func (a *Actions) ListAnnouncements(ctx context.Context, query url.Values) (Result[usecase.Page[announcement.Announcement]], error) {
	return run(ctx, a, "listAnnouncements", inputInvalid, func(ctx context.Context) (usecase.Page[announcement.Announcement], error) {
		issues := &ValidationError{}
		in := ListAnnouncementsInput{
			Page:     optionalInt(query, "page", issues),
			PageSize: optionalInt(query, "pageSize", issues),
		}
		if err := issues.orNil(); err != nil {
			return usecase.Page[announcement.Announcement]{}, err
		}
		if err := validate.Struct(in); err != nil {
			return usecase.Page[announcement.Announcement]{}, err
		}

		page, pageSize := 1, 0
		if in.Page != nil {
			page = *in.Page
		}
		if in.PageSize != nil {
			pageSize = *in.PageSize
		}
		return a.d.Announcements.List(ctx, page, pageSize)
	})
}

func (a *Actions) GetAnnouncement(ctx context.Context, id string) (Result[announcement.Announcement], error) {
	return run(ctx, a, "getAnnouncement", inputInvalid, func(ctx context.Context) (announcement.Announcement, error) {
		announcementID, err := parseID(id)
		if err != nil {
			return announcement.Announcement{}, err
		}
		return a.d.Announcements.Get(ctx, announcementID)
	})
}

func (a *Actions) GetAnnouncementNeighbors(ctx context.Context, id string) (Result[announcement.Neighbors], error) {
	return run(ctx, a, "getAnnouncementNeighbors", inputInvalid, func(ctx context.Context) (announcement.Neighbors, error) {
		announcementID, err := parseID(id)
		if err != nil {
			return announcement.Neighbors{}, err
		}
		return a.d.Announcements.Neighbors(ctx, announcementID)
	})
}
