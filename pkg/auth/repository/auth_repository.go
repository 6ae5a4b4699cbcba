package repository

import (
	"context"
	"time"

	"fazenda/entities"
)

type AuthRepository interface {
	// CreateUser fails with errs.KindDuplicateUser when the username is taken.
	CreateUser(ctx context.Context, u *entities.User) error
	FindUser(ctx context.Context, username string) (*entities.User, error)
	UpdatePassword(ctx context.Context, userID uint, hash string) error

	CreateSession(ctx context.Context, s *entities.Session) error
	// FindSession returns the session with its user loaded.
	FindSession(ctx context.Context, token string) (*entities.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
