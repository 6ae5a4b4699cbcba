package repositoryImp

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fazenda/entities"
	"fazenda/pkg/auth/repository"
	"fazenda/pkg/errs"
	"fazenda/pkg/sqlerr"
)

var errDuplicate = errs.New(errs.KindDuplicateUser, "This username is already taken")

type authRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AuthRepository { return &authRepo{db} }

func (r *authRepo) CreateUser(ctx context.Context, u *entities.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entities.User{}).Where("username = ?", u.Username).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return errDuplicate
		}
		return tx.Create(u).Error
	})
	if err == nil {
		return nil
	}
	// a concurrent signup can still hit the unique index
	if v, ok := sqlerr.Classify(err); ok && v.Code == sqlerr.UniqueViolation {
		return errDuplicate
	}
	return sqlerr.Translate(err)
}

func (r *authRepo) FindUser(ctx context.Context, username string) (*entities.User, error) {
	var u entities.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, sqlerr.Translate(err)
	}
	return &u, nil
}

func (r *authRepo) UpdatePassword(ctx context.Context, userID uint, hash string) error {
	err := r.db.WithContext(ctx).Model(&entities.User{}).Where("id = ?", userID).Update("password", hash).Error
	return sqlerr.Translate(err)
}

func (r *authRepo) CreateSession(ctx context.Context, s *entities.Session) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("User").Create(s).Error
	})
	return sqlerr.Translate(err, "user")
}

func (r *authRepo) FindSession(ctx context.Context, token string) (*entities.Session, error) {
	var s entities.Session
	if err := r.db.WithContext(ctx).Preload("User").Where("token = ?", token).First(&s).Error; err != nil {
		return nil, sqlerr.Translate(err)
	}
	return &s, nil
}

func (r *authRepo) DeleteSession(ctx context.Context, token string) error {
	return sqlerr.Translate(r.db.WithContext(ctx).Where("token = ?", token).Delete(&entities.Session{}).Error)
}

func (r *authRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&entities.Session{})
	return res.RowsAffected, sqlerr.Translate(res.Error)
}
