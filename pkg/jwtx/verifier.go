package jwtx

import (
	"errors"
	"time"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// VerifyOptions captures common expectations used by verifiers.
type VerifyOptions struct {
	// Issuer the token must have (claims.iss). Empty means "don't care".
	Issuer string

	// Leeway allows small clock skew when validating exp/iat.
	Leeway time.Duration

	// RequireKID enforces presence of the "kid" header. When false a token
	// without a kid is checked against the only key in the set.
	RequireKID bool

	// Now overrides the verification clock. Tests only.
	Now func() time.Time
}

// Every verification failure wraps exactly one of ErrExpired or ErrMalformed.
// The remaining errors narrow down the malformed case for logs.
var (
	ErrMalformed = errors.New("jwtx: malformed token")
	ErrExpired   = errors.New("jwtx: token expired")

	ErrAlgMismatch  = errors.New("jwtx: algorithm mismatch")
	ErrUnknownKID   = errors.New("jwtx: unknown kid")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
	ErrTokenType    = errors.New("jwtx: unexpected token type")
)

// RS256Adapter a Verifier wrapper for RS256.
type RS256Adapter struct{ *RS256Verifier }

func (a RS256Adapter) Verify(token string) (Claims, error) {
	c, err := a.RS256Verifier.Verify(token)
	if err != nil {
		return Claims{}, err
	}
	return *c, nil
}

// NewCommonRS256 returns a Verifier using the RS256 implementation wrapped
// in the common interface.
func NewCommonRS256(keys *KeySet, opts VerifyOptions) Verifier {
	return RS256Adapter{NewVerifierRS256(keys, opts)}
}
