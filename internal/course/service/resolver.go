package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gtrskylin3/CourseWebsite/internal/course/domain"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store"
	"github.com/gtrskylin3/CourseWebsite/pkg/cryptox"
	"github.com/gtrskylin3/CourseWebsite/pkg/jwtx"
	"github.com/gtrskylin3/CourseWebsite/pkg/slogx"
)

// Failure kinds as they appear in logs and in the auth failure metric.
const (
	FailureExpired      = "expired"
	FailureMalformed    = "malformed"
	FailureWrongType    = "wrong_type"
	FailureClaims       = "invalid_claims"
	FailureUnknownUser  = "unknown_or_inactive_user"
	FailureReused       = "refresh_reused"
	FailureNoCredential = "no_credential"
)

// Resolver turns a raw token into the user it was issued to. The user row
// is always reloaded; nothing in the token is trusted over the store.
type Resolver struct {
	Codec   *jwtx.Codec
	Store   store.Store
	Metrics AuthMetrics
}

// ResolveAccess is Resolve for access tokens, the one every protected route
// goes through.
func (r *Resolver) ResolveAccess(ctx context.Context, raw string) (domain.User, error) {
	return r.Resolve(ctx, raw, jwtx.TypeAccess)
}

// Resolve verifies raw, checks that it is a wantType token and loads its
// active subject.
func (r *Resolver) Resolve(ctx context.Context, raw, wantType string) (domain.User, error) {
	u, _, err := r.resolve(ctx, raw, wantType)
	return u, err
}

func (r *Resolver) resolve(ctx context.Context, raw, wantType string) (domain.User, jwtx.Claims, error) {
	claims, err := r.Codec.Verify(raw)
	if err != nil {
		if errors.Is(err, jwtx.ErrExpired) {
			return domain.User{}, jwtx.Claims{}, r.fail(ctx, raw, FailureExpired, ErrExpiredCredential)
		}
		return domain.User{}, jwtx.Claims{}, r.fail(ctx, raw, FailureMalformed, ErrMalformedCredential)
	}

	if claims.ValidateType(wantType) != nil {
		return domain.User{}, jwtx.Claims{}, r.fail(ctx, raw, FailureWrongType, ErrWrongTokenType)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return domain.User{}, jwtx.Claims{}, r.fail(ctx, raw, FailureClaims, ErrInvalidClaims)
	}

	u, err := r.Store.Users().GetUserByID(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.User{}, jwtx.Claims{}, r.fail(ctx, raw, FailureUnknownUser, ErrUnknownOrInactiveUser)
	case err != nil:
		return domain.User{}, jwtx.Claims{}, fmt.Errorf("load token subject: %w", err)
	case !u.IsActive:
		return domain.User{}, jwtx.Claims{}, r.fail(ctx, raw, FailureUnknownUser, ErrUnknownOrInactiveUser)
	}

	return u, claims, nil
}

// fail logs and counts a rejected credential, then hands back sentinel.
func (r *Resolver) fail(ctx context.Context, raw, kind string, sentinel error) error {
	slogx.FromContext(ctx).Warn("credential rejected",
		slog.String("kind", kind),
		slog.String("token_fp", cryptox.FingerprintToken(raw)),
	)
	if r.Metrics != nil {
		r.Metrics.RecordFailure(ctx, kind)
	}
	return sentinel
}

// RecordMissing counts a request that carried no credential at all.
func (r *Resolver) RecordMissing(ctx context.Context) {
	if r.Metrics != nil {
		r.Metrics.RecordFailure(ctx, FailureNoCredential)
	}
}
