package usecase

import (
	"context"
	"errors"

	"job-board/internal/domain/apperr"
	"job-board/internal/domain/role"
	"job-board/internal/domain/user"
	"job-board/internal/session"
	ucuser "job-board/internal/usecase/user"

	"github.com/google/uuid"
)

type Me struct {
	User    user.User     `json:"user"`
	Profile *user.Profile `json:"profile"`
}

type UserUsecase interface {
	ResolveContext(ctx context.Context, s *session.Session) (user.Context, error)
	GetMe(ctx context.Context, current user.Context) (Me, error)
	UpdateProfile(ctx context.Context, current user.Context, in ucuser.UpdateProfileInput) (user.Profile, error)
}

type Users struct {
	users user.Repository
	svc   *ucuser.Service
}

func NewUserUsecase(users user.Repository) *Users {
	return &Users{users: users, svc: ucuser.NewService(users)}
}

// ResolveContext turns a session into the current user's context. It reads
// the user record every time so role and organization changes apply at once.
func (u *Users) ResolveContext(ctx context.Context, s *session.Session) (user.Context, error) {
	if s == nil || s.User.ID == uuid.Nil {
		return user.Context{}, apperr.Unauthorized()
	}
	usr, err := u.users.GetByID(ctx, s.User.ID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.Context{}, apperr.Unauthorized()
		}
		return user.Context{}, err
	}
	return usr.Context(), nil
}

func (u *Users) GetMe(ctx context.Context, current user.Context) (Me, error) {
	usr, err := u.users.GetByID(ctx, current.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Me{}, apperr.NotFound(apperr.EntityUser)
		}
		return Me{}, err
	}
	usr.PasswordHash = ""

	me := Me{User: usr}
	hasProfile, _ := role.Match(usr.Role, true, false, false)
	if !hasProfile {
		return me, nil
	}

	p, err := u.svc.GetProfile(ctx, usr.ID)
	if err != nil && !errors.Is(err, user.ErrProfileNotFound) {
		return Me{}, err
	}
	if err == nil {
		me.Profile = &p
	}
	return me, nil
}

func (u *Users) UpdateProfile(ctx context.Context, current user.Context, in ucuser.UpdateProfileInput) (user.Profile, error) {
	p, err := u.svc.UpdateProfile(ctx, current.UserID, in)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrProfileNotFound):
			return user.Profile{}, apperr.NotFound(apperr.EntityUser)
		case errors.Is(err, ucuser.ErrInvalidInput):
			return user.Profile{}, apperr.New(apperr.CodeInvalidInput, "profile fields are empty or too long", apperr.KeyInputInvalid)
		}
		return user.Profile{}, err
	}
	return p, nil
}
