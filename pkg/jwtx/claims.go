package jwtx

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default lifetimes for the two token types. Services override these from
// configuration; the defaults only apply when nothing else was set.
const (
	// DefaultAccessTokenTTL is the default lifetime for access tokens.
	DefaultAccessTokenTTL = 60 * time.Minute

	// DefaultRefreshTokenTTL is the default lifetime for refresh tokens.
	DefaultRefreshTokenTTL = 60 * 24 * time.Hour
)

// Token type discriminators carried in the "type" claim.
const (
	TypeAccess  = "access_token"
	TypeRefresh = "refresh_token"
)

// Claims is the claim set every course token carries. The display fields are
// a convenience copy of the user row at issue time and must never be trusted
// over the store.
type Claims struct {
	jwt.RegisteredClaims

	// Type is either TypeAccess or TypeRefresh.
	Type string `json:"type"`

	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`

	// IsActive is a pointer so that refresh tokens can leave it out entirely.
	IsActive *bool `json:"is_active,omitempty"`
}

// NewAccessClaims builds the claim set for an access token. Timestamps are
// left empty; the Codec stamps them when signing.
func NewAccessClaims(
	userID int64,
	issuer string,
	username, firstName, lastName string,
	isActive bool,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:  issuer,
			Subject: strconv.FormatInt(userID, 10),
		},
		Type:      TypeAccess,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		IsActive:  &isActive,
	}
}

// NewRefreshClaims builds the claim set for a refresh token. It only carries
// the subject and the username.
func NewRefreshClaims(userID int64, issuer, username string) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:  issuer,
			Subject: strconv.FormatInt(userID, 10),
		},
		Type:     TypeRefresh,
		Username: username,
	}
}

// ValidateType checks the "type" discriminator.
func (c *Claims) ValidateType(want string) error {
	if c.Type != want {
		return ErrTokenType
	}
	return nil
}

// ValidateRequired makes sure the claims this package relies on are present.
// exp is enforced by the parser itself.
func (c *Claims) ValidateRequired() error {
	if c.IssuedAt == nil {
		return ErrInvalidClaim
	}

	switch c.Type {
	case TypeAccess, TypeRefresh:
		return nil
	default:
		return ErrInvalidClaim
	}
}

// TTL is the lifetime the token was issued with (exp - iat).
func (c *Claims) TTL() time.Duration {
	if c.IssuedAt == nil || c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.Sub(c.IssuedAt.Time)
}
