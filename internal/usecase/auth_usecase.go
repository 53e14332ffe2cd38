package usecase

import (
	"context"
	"errors"

	"job-board/internal/domain/apperr"
	"job-board/internal/domain/user"
	"job-board/internal/pkg/jwt"
	ucauth "job-board/internal/usecase/auth"

	"github.com/sirupsen/logrus"
)

type AuthResult struct {
	User   user.User `json:"user"`
	Tokens jwt.Pair  `json:"tokens"`
}

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (AuthResult, error)
	Login(ctx context.Context, in ucauth.LoginInput) (AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (jwt.Pair, error)
}

type Auth struct {
	authSvc *ucauth.Service
	users   user.Repository
	jwt     jwt.Service
	logger  logrus.FieldLogger
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service, logger logrus.FieldLogger) *Auth {
	return &Auth{authSvc: ucauth.NewService(users), users: users, jwt: jwtSvc, logger: logger}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (AuthResult, error) {
	usr, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return AuthResult{}, mapAuthError(err)
	}
	if u.logger != nil {
		u.logger.WithField("user_id", usr.ID).Info("[Auth] registered")
	}
	return u.issue(usr)
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (AuthResult, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return AuthResult{}, mapAuthError(err)
	}
	return u.issue(usr)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (jwt.Pair, error) {
	if refreshToken == "" {
		return jwt.Pair{}, apperr.Unauthorized()
	}

	claims, err := u.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return jwt.Pair{}, apperr.Unauthorized()
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return jwt.Pair{}, apperr.Unauthorized()
		}
		return jwt.Pair{}, err
	}

	return u.jwt.GeneratePair(usr.ID, usr.Email)
}

func (u *Auth) issue(usr user.User) (AuthResult, error) {
	pair, err := u.jwt.GeneratePair(usr.ID, usr.Email)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: usr, Tokens: pair}, nil
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return apperr.Conflict(apperr.ConflictEmailTaken)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return apperr.InvalidCredentials()
	case errors.Is(err, ucauth.ErrInvalidInput):
		return apperr.New(apperr.CodeInvalidInput, "email and a password of at least 8 characters are required", apperr.KeyInputInvalid)
	default:
		return err
	}
}
