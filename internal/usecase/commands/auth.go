package commands

import (
	"context"

	"course-market/internal/domain/user"
	"course-market/internal/pkg/errs"
	"course-market/internal/pkg/jwt"
	"course-market/internal/pkg/password"
	"course-market/internal/usecase/queries"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserInactive       = errs.New("user inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error)
}

type LoginResult struct {
	User        *queries.AuthorizedUserView
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	users      UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(users UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{users: users, jwtService: jwtService}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	view, hashed, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}
	if err := password.ComparePassword(hashed, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{User: view, AccessToken: token}, nil
}
