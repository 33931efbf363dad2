package jwtx

import (
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// RS256Verifier validates JWTs signed using RS256.
type RS256Verifier struct {
	keys   *KeySet
	opts   VerifyOptions
	parser *jwt.Parser
}

// NewVerifierRS256 creates a verifier using a KeySet of RSA public keys.
func NewVerifierRS256(keys *KeySet, opts VerifyOptions) *RS256Verifier {
	parserOpts := []jwt.ParserOption{
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(opts.Leeway),
	}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(opts.Issuer))
	}
	if opts.Now != nil {
		parserOpts = append(parserOpts, jwt.WithTimeFunc(opts.Now))
	}

	return &RS256Verifier{
		keys:   keys,
		opts:   opts,
		parser: jwt.NewParser(parserOpts...),
	}
}

// Verify validates the JWT string and returns its parsed Claims. The returned
// error always wraps ErrExpired or ErrMalformed.
func (v *RS256Verifier) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := v.parser.ParseWithClaims(tokenStr, claims, v.keyFunc)
	if err != nil {
		return nil, classifyParseError(err)
	}
	if !token.Valid {
		return nil, ErrMalformed
	}

	if err := claims.ValidateRequired(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return claims, nil
}

func (v *RS256Verifier) keyFunc(t *jwt.Token) (any, error) {
	if t.Method == nil || t.Method.Alg() != jwt.SigningMethodRS256.Alg() {
		return nil, fmt.Errorf("%w: %v", ErrAlgMismatch, t.Header["alg"])
	}

	kid, _ := t.Header["kid"].(string)

	var (
		pub any
		err error
	)
	switch {
	case kid != "":
		pub, err = v.keys.Get(kid)
	case v.opts.RequireKID:
		return nil, fmt.Errorf("%w: missing kid", ErrUnknownKID)
	default:
		// Tokens minted by older deployments carry no kid at all.
		pub, err = v.keys.Sole()
	}
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrUnknownKID, kid, err)
	}

	// Make sure it's actually an RSA key (it should be, watch it not be)
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("jwtx: invalid RSA key type")
	}
	return rsaPub, nil
}

// classifyParseError folds the parser's error tree into our two buckets.
// Signature checks run before claim checks, so a tampered token that is
// also expired still comes out as malformed.
func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrExpired, err)
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return fmt.Errorf("%w: %w", ErrMalformed, ErrIssuer)
	case errors.Is(err, ErrUnknownKID), errors.Is(err, ErrAlgMismatch):
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %w: %w", ErrMalformed, ErrInvalidSig, err)
	default:
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
}
