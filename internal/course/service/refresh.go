package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/gtrskylin3/CourseWebsite/internal/course/domain"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store"
	"github.com/gtrskylin3/CourseWebsite/pkg/cryptox"
	"github.com/gtrskylin3/CourseWebsite/pkg/jwtx"
	"github.com/gtrskylin3/CourseWebsite/pkg/slogx"
)

// RefreshResult is a successful refresh. Tokens.Refresh is nil when rotation
// is off and the client keeps its current refresh token.
type RefreshResult struct {
	User   domain.User
	Tokens domain.TokenPair
}

// Refresher exchanges a refresh token for a new access token.
type Refresher struct {
	Resolver *Resolver
	Issuer   *TokenIssuer
	Store    store.Store

	// Rotation consumes every presented refresh token and hands out a new
	// one. A consumed token presented again is rejected.
	Rotation bool
}

func (s *Refresher) Refresh(ctx context.Context, raw string) (RefreshResult, error) {
	l := slogx.FromContext(ctx)

	u, claims, err := s.Resolver.resolve(ctx, raw, jwtx.TypeRefresh)
	if err != nil {
		return RefreshResult{}, err
	}

	result := RefreshResult{User: u}
	issue := func() error {
		access, err := s.Issuer.IssueAccess(ctx, u)
		if err != nil {
			return err
		}
		result.Tokens.Access = access
		return nil
	}

	if s.Rotation {
		// New tokens only exist if the old refresh token was consumed.
		err = s.consume(ctx, raw, u.ID, claims, func() error {
			if err := issue(); err != nil {
				return err
			}
			refresh, err := s.Issuer.IssueRefresh(ctx, u)
			if err != nil {
				return err
			}
			result.Tokens.Refresh = &refresh
			return nil
		})
		if errors.Is(err, ErrRefreshReused) {
			return RefreshResult{}, s.Resolver.fail(ctx, raw, FailureReused, err)
		}
	} else {
		err = issue()
	}
	if err != nil {
		return RefreshResult{}, err
	}

	l.Info("token refreshed", slog.Int64("user_id", u.ID), slog.Bool("rotated", s.Rotation))
	return result, nil
}

// Revoke consumes a refresh token at logout. It is a no-op without
// rotation, and a token that does not verify is simply ignored.
func (s *Refresher) Revoke(ctx context.Context, raw string) error {
	if !s.Rotation || raw == "" {
		return nil
	}

	claims, err := s.Resolver.Codec.Verify(raw)
	if err != nil || claims.ValidateType(jwtx.TypeRefresh) != nil {
		return nil
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return nil
	}

	err = s.consume(ctx, raw, userID, claims, nil)
	if errors.Is(err, ErrRefreshReused) {
		return nil
	}
	return err
}

func (s *Refresher) consume(ctx context.Context, raw string, userID int64, claims jwtx.Claims, then func() error) error {
	spent := domain.ConsumedRefreshToken{
		Fingerprint: cryptox.FingerprintToken(raw),
		UserID:      userID,
		ExpiresAt:   claims.ExpiresAt.Time,
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		err := tx.RefreshTokens().ConsumeRefreshToken(ctx, spent)
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrRefreshReused
		}
		if err != nil || then == nil {
			return err
		}
		return then()
	})
}
