package service

import (
	"context"
	"time"

	"github.com/gtrskylin3/CourseWebsite/internal/course/domain"
	"github.com/gtrskylin3/CourseWebsite/pkg/idx"
	"github.com/gtrskylin3/CourseWebsite/pkg/jwtx"
)

// AuthMetrics receives authentication events. A nil AuthMetrics is allowed
// everywhere it is used.
type AuthMetrics interface {
	RecordFailure(ctx context.Context, kind string)
	RecordIssued(ctx context.Context, tokenType string)
}

// TokenIssuer mints access and refresh tokens for a user. It never touches
// the store.
type TokenIssuer struct {
	Codec      *jwtx.Codec
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Metrics    AuthMetrics
}

// IssueAccess signs an access token carrying the user's display fields.
func (s *TokenIssuer) IssueAccess(ctx context.Context, u domain.User) (domain.IssuedToken, error) {
	claims := jwtx.NewAccessClaims(u.ID, s.Issuer, u.Username, u.FirstName, u.LastName, u.IsActive)
	return s.issue(ctx, claims, s.accessTTL())
}

// IssueRefresh signs a refresh token. Each one gets its own jti so that two
// tokens minted in the same second still have distinct fingerprints.
func (s *TokenIssuer) IssueRefresh(ctx context.Context, u domain.User) (domain.IssuedToken, error) {
	claims := jwtx.NewRefreshClaims(u.ID, s.Issuer, u.Username)
	claims.ID = idx.New().String()
	return s.issue(ctx, claims, s.refreshTTL())
}

// IssuePair is what login returns.
func (s *TokenIssuer) IssuePair(ctx context.Context, u domain.User) (domain.TokenPair, error) {
	access, err := s.IssueAccess(ctx, u)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := s.IssueRefresh(ctx, u)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{Access: access, Refresh: &refresh}, nil
}

func (s *TokenIssuer) issue(ctx context.Context, claims jwtx.Claims, ttl time.Duration) (domain.IssuedToken, error) {
	token, stamped, err := s.Codec.Issue(claims, ttl)
	if err != nil {
		return domain.IssuedToken{}, err
	}
	if s.Metrics != nil {
		s.Metrics.RecordIssued(ctx, claims.Type)
	}
	return domain.IssuedToken{
		Value:     token,
		Type:      claims.Type,
		TTL:       stamped.TTL(),
		ExpiresAt: stamped.ExpiresAt.Time,
	}, nil
}

func (s *TokenIssuer) accessTTL() time.Duration {
	if s.AccessTTL > 0 {
		return s.AccessTTL
	}
	return jwtx.DefaultAccessTokenTTL
}

func (s *TokenIssuer) refreshTTL() time.Duration {
	if s.RefreshTTL > 0 {
		return s.RefreshTTL
	}
	return jwtx.DefaultRefreshTokenTTL
}
