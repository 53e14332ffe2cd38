package action

import (
	"context"

	"job-board/internal/domain/user"
	"job-board/internal/pkg/jwt"
	"job-board/internal/usecase"
	ucauth "job-board/internal/usecase/auth"
	ucuser "job-board/internal/usecase/user"
)

func (a *Actions) GetMe(ctx context.Context) (Result[usecase.Me], error) {
	return run(ctx, a, "getMe", inputInvalid, func(ctx context.Context) (usecase.Me, error) {
		current, err := a.currentUser(ctx)
		if err != nil {
			return usecase.Me{}, err
		}
		return a.d.Users.GetMe(ctx, current)
	})
}

type UpdateProfileInput struct {
	DisplayName *string `json:"displayName" validate:"omitempty,min=1,max=120"`
	Headline    *string `json:"headline" validate:"omitempty,max=200"`
	Location    *string `json:"location" validate:"omitempty,max=120"`
}

func (a *Actions) UpdateMyProfile(ctx context.Context, in UpdateProfileInput) (Result[user.Profile], error) {
	return run(ctx, a, "updateMyProfile", inputInvalid, func(ctx context.Context) (user.Profile, error) {
		current, err := a.currentUser(ctx)
		if err != nil {
			return user.Profile{}, err
		}
		if err := validate.Struct(in); err != nil {
			return user.Profile{}, err
		}
		return a.d.Users.UpdateProfile(ctx, current, ucuser.UpdateProfileInput{
			DisplayName: in.DisplayName,
			Headline:    in.Headline,
			Location:    in.Location,
		})
	})
}

type RegisterInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	DisplayName string `json:"displayName" validate:"omitempty,max=120"`
}

func (a *Actions) Register(ctx context.Context, in RegisterInput) (Result[usecase.AuthResult], error) {
	return run(ctx, a, "register", inputInvalid, func(ctx context.Context) (usecase.AuthResult, error) {
		if err := validate.Struct(in); err != nil {
			return usecase.AuthResult{}, err
		}
		return a.d.Auth.Register(ctx, ucauth.RegisterInput{Email: in.Email, Password: in.Password, DisplayName: in.DisplayName})
	})
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (a *Actions) Login(ctx context.Context, in LoginInput) (Result[usecase.AuthResult], error) {
	return run(ctx, a, "login", inputInvalid, func(ctx context.Context) (usecase.AuthResult, error) {
		if err := validate.Struct(in); err != nil {
			return usecase.AuthResult{}, err
		}
		return a.d.Auth.Login(ctx, ucauth.LoginInput{Email: in.Email, Password: in.Password})
	})
}

type RefreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

func (a *Actions) Refresh(ctx context.Context, in RefreshInput) (Result[jwt.Pair], error) {
	return run(ctx, a, "refresh", inputInvalid, func(ctx context.Context) (jwt.Pair, error) {
		if err := validate.Struct(in); err != nil {
			return jwt.Pair{}, err
		}
		return a.d.Auth.Refresh(ctx, in.RefreshToken)
	})
}
