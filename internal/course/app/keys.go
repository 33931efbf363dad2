package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gtrskylin3/CourseWebsite/pkg/jwtx"
)

// InitAuthKeys loads the token signing key pair once at startup.
//
// Key modes:
//   - "file": the PEM pair is read from AUTH_PRIVATE_KEY_FILE and
//     AUTH_PUBLIC_KEY_FILE. A missing file or a public key that does not
//     belong to the private key stops the service.
//   - "ephemeral": a pair is generated in memory. Every token becomes
//     invalid when the service restarts.
func InitAuthKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	opts := jwtx.KeyManagerOptions{
		Issuer:  cfg.Issuer,
		RSABits: cfg.RSABits,
	}

	if cfg.KeyMode == KeyModeEphemeral {
		km, err := jwtx.NewEphemeralKeyManager(opts)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize ephemeral key manager: %w", err)
		}
		logger.Info("generated ephemeral signing key", "kid", km.KID(), "bits", cfg.RSABits, "issuer", cfg.Issuer)
		logger.Warn("all existing tokens are now invalid due to key generation on startup")
		return km, nil
	}

	privatePEM, err := os.ReadFile(cfg.PrivateKeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}
	publicPEM, err := os.ReadFile(cfg.PublicKeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key: %w", err)
	}

	km, err := jwtx.NewKeyManagerFromPEM(privatePEM, publicPEM, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load signing keys from %s and %s: %w",
			cfg.PrivateKeyFile, cfg.PublicKeyFile, err)
	}

	logger.Info("signing key loaded",
		"kid", km.KID(),
		"private_key_file", cfg.PrivateKeyFile,
		"public_key_file", cfg.PublicKeyFile,
		"issuer", cfg.Issuer,
	)
	return km, nil
}
