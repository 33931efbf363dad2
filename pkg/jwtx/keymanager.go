package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/gtrskylin3/CourseWebsite/pkg/cryptox"
)

// AlgorithmRS256 is the only signing algorithm we issue or accept.
const AlgorithmRS256 = "RS256"

// DefaultRSABits is used for generated keys when nothing else is configured.
const DefaultRSABits = 2048

// ErrKeyMismatch is returned when the public key file does not belong to the
// private key file.
var ErrKeyMismatch = errors.New("jwtx: public key does not match private key")

// KeyManager bundles the signing key, the verifier and the public KeySet of a
// single key pair. Build it once at startup and share it; nothing in it is
// mutated afterwards.
type KeyManager struct {
	Signer   Signer
	Verifier Verifier
	KeySet   *KeySet
}

// KeyManagerOptions configures verification and key generation.
type KeyManagerOptions struct {
	// Issuer is stamped into new tokens and enforced on verification.
	Issuer string

	// RSABits is the size of generated keys (ephemeral mode only).
	RSABits int

	// Leeway allows small clock skew on exp/iat checks.
	Leeway time.Duration

	// Now overrides the verifier clock. Tests only.
	Now func() time.Time
}

// NewKeyManagerFromPEM builds a KeyManager from a PEM private key (PKCS1 or
// PKCS8) and a PEM public key (PKIX or PKCS1). The public key is what the
// verifier trusts, so it has to match the private key exactly.
func NewKeyManagerFromPEM(privatePEM, publicPEM []byte, opts KeyManagerOptions) (*KeyManager, error) {
	pub, err := parseRSAPublicKeyPEM(publicPEM)
	if err != nil {
		return nil, err
	}

	pubJWK := NewRSAJWK("", "sig", AlgorithmRS256, pub)
	pubJWK.Kid = pubJWK.Thumbprint()

	signer, err := newRS256Signer(pubJWK.Kid, privatePEM)
	if err != nil {
		return nil, err
	}
	if !signer.pub.Equal(pub) {
		return nil, ErrKeyMismatch
	}

	keyset := NewKeySet()
	if err := keyset.AddJWK(pubJWK); err != nil {
		return nil, fmt.Errorf("jwtx: failed to add public key to keyset: %w", err)
	}

	return &KeyManager{
		Signer: signer,
		Verifier: NewCommonRS256(keyset, VerifyOptions{
			Issuer: opts.Issuer,
			Leeway: opts.Leeway,
			Now:    opts.Now,
		}),
		KeySet: keyset,
	}, nil
}

// NewEphemeralKeyManager generates a fresh key pair that only lives in
// memory. Every token becomes invalid when the process restarts, which is
// fine for development and tests and nothing else.
func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	bits := opts.RSABits
	if bits <= 0 {
		bits = DefaultRSABits
	}

	privatePEM, err := cryptox.GenerateRSAKey(bits)
	if err != nil {
		return nil, fmt.Errorf("jwtx: failed to generate signing key: %w", err)
	}

	publicPEM, err := cryptox.PublicKeyPEM(privatePEM)
	if err != nil {
		return nil, fmt.Errorf("jwtx: failed to derive public key: %w", err)
	}

	return NewKeyManagerFromPEM(privatePEM, publicPEM, opts)
}

// KID returns the key id of the signing key.
func (km *KeyManager) KID() string {
	return km.Signer.KID()
}
