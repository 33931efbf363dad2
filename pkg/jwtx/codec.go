package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Codec signs claim sets with a bounded lifetime and verifies them back. It
// owns the issuing clock; the verifier keeps its own.
type Codec struct {
	Signer   Signer
	Verifier Verifier

	// DefaultTTL applies when Sign is called with a zero expiry. A negative
	// expiry is honoured and yields an already expired token.
	DefaultTTL time.Duration

	// Now overrides the signing clock. Nil means time.Now.
	Now func() time.Time
}

// NewCodec wires a Codec to a KeyManager.
func NewCodec(km *KeyManager, defaultTTL time.Duration) *Codec {
	return &Codec{
		Signer:     km.Signer,
		Verifier:   km.Verifier,
		DefaultTTL: defaultTTL,
	}
}

// Sign stamps iat and exp on the claims and signs them.
func (c *Codec) Sign(claims Claims, expiry time.Duration) (string, error) {
	token, _, err := c.Issue(claims, expiry)
	return token, err
}

// Issue is Sign that also hands back the stamped claims, so callers know the
// exact expiry that went into the token.
func (c *Codec) Issue(claims Claims, expiry time.Duration) (string, Claims, error) {
	if c.Signer == nil {
		return "", Claims{}, errors.New("jwtx: codec has no signer")
	}

	if expiry == 0 {
		expiry = c.DefaultTTL
	}
	if expiry == 0 {
		expiry = DefaultAccessTokenTTL
	}

	now := c.now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(expiry))

	// nbf is never issued. jti is left to the caller.
	claims.NotBefore = nil

	token, err := c.Signer.Sign(claims)
	if err != nil {
		return "", Claims{}, err
	}
	return token, claims, nil
}

// Verify checks signature, algorithm and expiry and returns the claims. The
// error wraps ErrExpired or ErrMalformed.
func (c *Codec) Verify(token string) (Claims, error) {
	if c.Verifier == nil {
		return Claims{}, errors.New("jwtx: codec has no verifier")
	}
	return c.Verifier.Verify(token)
}

func (c *Codec) now() time.Time {
	if c.Now != nil {
		return c.Now().UTC()
	}
	return time.Now().UTC()
}
