package serviceImp

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"fazenda/entities"
	repo "fazenda/pkg/auth/repository"
	"fazenda/pkg/auth/service"
	"fazenda/pkg/errs"
	"fazenda/pkg/form"
)

const maxPasswordBytes = 72

var errInvalid = errs.New(errs.KindInvalidCredentials, "Invalid username or password")

type authSvc struct {
	r   repo.AuthRepository
	ttl time.Duration
	log zerolog.Logger
	now func() time.Time
}

func New(r repo.AuthRepository, ttl time.Duration, log zerolog.Logger) service.AuthService {
	return &authSvc{r: r, ttl: ttl, log: log, now: time.Now}
}

func (s *authSvc) Register(ctx context.Context, cred service.Credentials) (*entities.User, error) {
	if err := check(&cred); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cred.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.Storage(err)
	}
	u := &entities.User{Username: cred.Username, Password: string(hash)}
	if err := s.r.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *authSvc) Login(ctx context.Context, cred service.Credentials) (*entities.Session, error) {
	if err := check(&cred); err != nil {
		return nil, err
	}
	u, err := s.r.FindUser(ctx, cred.Username)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errInvalid
	}
	if err != nil {
		return nil, err
	}

	if isHash(u.Password) {
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(cred.Password)) != nil {
			return nil, errInvalid
		}
	} else {
		// imported rows still hold plaintext; accept once and upgrade
		if subtle.ConstantTimeCompare([]byte(u.Password), []byte(cred.Password)) != 1 {
			return nil, errInvalid
		}
		s.rehash(ctx, u, cred.Password)
	}

	now := s.now().UTC()
	sess := &entities.Session{Token: uuid.NewString(), UserID: u.ID, User: u, ExpiresAt: now.Add(s.ttl)}
	if err := s.r.CreateSession(ctx, sess); err != nil {
		return nil, err
	}
	if n, err := s.r.DeleteExpired(ctx, now); err != nil {
		s.log.Warn().Err(err).Msg("purge expired sessions")
	} else if n > 0 {
		s.log.Debug().Int64("sessions", n).Msg("expired sessions purged")
	}
	return sess, nil
}

func (s *authSvc) rehash(ctx context.Context, u *entities.User, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err == nil {
		err = s.r.UpdatePassword(ctx, u.ID, string(hash))
	}
	if err != nil {
		s.log.Warn().Err(err).Str("username", u.Username).Msg("legacy password not rehashed")
		return
	}
	u.Password = string(hash)
	s.log.Info().Str("username", u.Username).Msg("legacy password rehashed")
}

func (s *authSvc) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.r.DeleteSession(ctx, token)
}

func (s *authSvc) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	sess, err := s.r.FindSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess.Expired(s.now()) {
		if err := s.r.DeleteSession(ctx, token); err != nil {
			s.log.Warn().Err(err).Msg("delete expired session")
		}
		return nil, errs.New(errs.KindNotFound, "session expired")
	}
	return sess.User, nil
}

func check(cred *service.Credentials) error {
	cred.Username = strings.TrimSpace(cred.Username)
	c := form.NewChecker(form.Strict)
	c.Struct(cred)
	// validator counts runes, bcrypt counts bytes
	if len(cred.Password) > maxPasswordBytes && !c.Has("password") {
		c.Add("password", fmt.Sprintf("must not exceed %d bytes", maxPasswordBytes))
	}
	return c.Err()
}

func isHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
