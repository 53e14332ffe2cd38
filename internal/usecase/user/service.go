package user

import (
	"context"
	"errors"
	"strings"

	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

const (
	maxDisplayNameLen = 120
	maxHeadlineLen    = 200
	maxLocationLen    = 120
)

// UpdateProfileInput leaves nil fields unchanged. An empty headline or
// location clears it.
type UpdateProfileInput struct {
	DisplayName *string
	Headline    *string
	Location    *string
}

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	return s.users.GetProfile(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.Profile, error) {
	p, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return user.Profile{}, err
	}

	if in.DisplayName != nil {
		name := strings.TrimSpace(*in.DisplayName)
		if name == "" || len(name) > maxDisplayNameLen {
			return user.Profile{}, ErrInvalidInput
		}
		p.DisplayName = name
	}
	if in.Headline != nil {
		v, ok := optionalText(*in.Headline, maxHeadlineLen)
		if !ok {
			return user.Profile{}, ErrInvalidInput
		}
		p.Headline = v
	}
	if in.Location != nil {
		v, ok := optionalText(*in.Location, maxLocationLen)
		if !ok {
			return user.Profile{}, ErrInvalidInput
		}
		p.Location = v
	}

	return s.users.UpdateProfile(ctx, p)
}

func optionalText(raw string, max int) (*string, bool) {
	v := strings.TrimSpace(raw)
	if len(v) > max {
		return nil, false
	}
	if v == "" {
		return nil, true
	}
	return &v, true
}
