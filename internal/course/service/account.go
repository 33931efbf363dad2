package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gtrskylin3/CourseWebsite/internal/course/domain"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store"
	"github.com/gtrskylin3/CourseWebsite/pkg/cryptox"
	"github.com/gtrskylin3/CourseWebsite/pkg/slogx"
)

var ErrUserNotFound = errors.New("user_not_found")

// RegisterInput is the body of a registration request.
type RegisterInput struct {
	Username  string `json:"username" validate:"required,max=32"`
	Password  string `json:"password" validate:"required,max=32"`
	FirstName string `json:"first_name" validate:"required,max=32"`
	LastName  string `json:"last_name" validate:"required,max=32"`
}

// LoginInput is the body of a login request, JSON or form encoded. Length
// limits belong to registration only; an overlong secret is simply wrong.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AccountService struct {
	Store  store.Store
	Hasher *cryptox.Hasher
	Issuer *TokenIssuer
}

// Register creates an active, non-admin user.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	if err := validateInput(in); err != nil {
		return domain.User{}, err
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	u := domain.User{
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		IsActive:     true,
	}
	u.ID, err = s.Store.Users().CreateUser(ctx, u)
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.User{}, ErrUsernameTaken
	}
	if err != nil {
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user registered",
		slog.Int64("user_id", u.ID),
		slog.String("username", u.Username),
	)
	return u, nil
}

// Login checks the password and issues an access and refresh token. An
// unknown username, a wrong password and a deactivated account all look the
// same from outside.
func (s *AccountService) Login(ctx context.Context, in LoginInput) (domain.User, domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	in.Username = strings.TrimSpace(in.Username)
	if err := validateInput(in); err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}

	u, err := s.Store.Users().GetUserByUsername(ctx, in.Username)
	if errors.Is(err, store.ErrNotFound) {
		l.Info("login failed", slog.String("reason", "unknown_user"))
		return domain.User{}, domain.TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}

	if err := s.Hasher.Verify(in.Password, u.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Error("stored password hash unreadable", slog.Int64("user_id", u.ID), slog.Any("error", err))
		}
		l.Info("login failed", slog.String("reason", "bad_password"), slog.Int64("user_id", u.ID))
		return domain.User{}, domain.TokenPair{}, ErrInvalidCredentials
	}
	if !u.IsActive {
		l.Info("login failed", slog.String("reason", "inactive"), slog.Int64("user_id", u.ID))
		return domain.User{}, domain.TokenPair{}, ErrInvalidCredentials
	}

	if s.Hasher.NeedsRehash(u.PasswordHash) {
		s.rehash(ctx, u, in.Password)
	}

	pair, err := s.Issuer.IssuePair(ctx, u)
	if err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}

	l.Info("user logged in", slog.Int64("user_id", u.ID))
	return u, pair, nil
}

// rehash upgrades an imported bcrypt hash. A failure here does not fail
// the login.
func (s *AccountService) rehash(ctx context.Context, u domain.User, password string) {
	l := slogx.FromContext(ctx)

	hash, err := s.Hasher.Hash(password)
	if err == nil {
		err = s.Store.Users().UpdatePasswordHash(ctx, u.ID, hash)
	}
	if err != nil {
		l.Warn("password rehash failed", slog.Int64("user_id", u.ID), slog.Any("error", err))
		return
	}
	l.Info("password rehashed", slog.Int64("user_id", u.ID))
}

// ListActiveUsers backs the admin user listing.
func (s *AccountService) ListActiveUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListActiveUsers(ctx)
}

// SetActive enables or disables an account by username. A disabled account
// is locked out on its next request; issued tokens stop resolving.
func (s *AccountService) SetActive(ctx context.Context, username string, active bool) (domain.User, error) {
	return s.update(ctx, username, func(users store.Users, id int64) error {
		return users.SetUserActive(ctx, id, active)
	})
}

// SetAdmin grants or revokes the administrator flag by username.
func (s *AccountService) SetAdmin(ctx context.Context, username string, admin bool) (domain.User, error) {
	return s.update(ctx, username, func(users store.Users, id int64) error {
		return users.SetUserAdmin(ctx, id, admin)
	})
}

func (s *AccountService) update(ctx context.Context, username string, fn func(store.Users, int64) error) (domain.User, error) {
	var u domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		found, err := tx.Users().GetUserByUsername(ctx, username)
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}
		if err := fn(tx.Users(), found.ID); err != nil {
			return err
		}
		u, err = tx.Users().GetUserByID(ctx, found.ID)
		return err
	})
	return u, err
}
