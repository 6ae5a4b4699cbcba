package service

import (
	"context"

	"fazenda/entities"
)

type Credentials struct {
	Username string `form:"username" validate:"required,max=64"`
	Password string `form:"password" validate:"required,max=72"`
}

type AuthService interface {
	Register(ctx context.Context, cred Credentials) (*entities.User, error)
	// Login returns a new session, or errs.KindInvalidCredentials.
	Login(ctx context.Context, cred Credentials) (*entities.Session, error)
	Logout(ctx context.Context, token string) error
	// Authenticate resolves a live session token to its user.
	Authenticate(ctx context.Context, token string) (*entities.User, error)
}
