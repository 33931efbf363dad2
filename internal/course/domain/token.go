package domain

import (
	"time"

	"github.com/gtrskylin3/CourseWebsite/pkg/coursesdk"
)

// IssuedToken is a freshly signed credential and what the transport needs
// to hand it out.
type IssuedToken struct {
	Value     string
	Type      string // jwtx.TypeAccess or jwtx.TypeRefresh
	TTL       time.Duration
	ExpiresAt time.Time
}

// TokenPair is the result of a login or a refresh. Refresh is nil when a
// refresh kept the presented refresh token.
type TokenPair struct {
	Access  IssuedToken
	Refresh *IssuedToken
}

// Response renders the pair for the wire.
func (p TokenPair) Response() coursesdk.TokenResponse {
	resp := coursesdk.TokenResponse{
		AccessToken: p.Access.Value,
		TokenType:   "Bearer",
		ExpiresIn:   int64(p.Access.TTL / time.Second),
	}
	if p.Refresh != nil {
		resp.RefreshToken = p.Refresh.Value
	}
	return resp
}

// ConsumedRefreshToken marks a refresh token as spent until it would have
// expired anyway.
type ConsumedRefreshToken struct {
	Fingerprint string // base64url SHA-256 of the token
	UserID      int64
	ExpiresAt   time.Time
}
