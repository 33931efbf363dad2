package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gtrskylin3/CourseWebsite/internal/course/app"
	"github.com/gtrskylin3/CourseWebsite/pkg/cryptox"
	"github.com/gtrskylin3/CourseWebsite/pkg/jwtx"
	"github.com/spf13/cobra"
)

// NewKeygenCmd creates the keygen command
func NewKeygenCmd() *cobra.Command {
	cfg := app.LoadConfig()

	var (
		privateFile string
		publicFile  string
		bits        int
		pkcs8       bool
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate the token signing key pair",
		Long:  "Generate an RSA key pair in PEM form at the paths the service loads in file key mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				for _, path := range []string{privateFile, publicFile} {
					if _, err := os.Stat(path); err == nil {
						return fmt.Errorf("%s already exists, use --force to replace it", path)
					} else if !errors.Is(err, os.ErrNotExist) {
						return err
					}
				}
			}

			generate := cryptox.GenerateRSAKey
			if pkcs8 {
				generate = cryptox.GenerateRSAKeyPKCS8
			}
			privatePEM, err := generate(bits)
			if err != nil {
				return fmt.Errorf("failed to generate key: %w", err)
			}
			publicPEM, err := cryptox.PublicKeyPEM(privatePEM)
			if err != nil {
				return fmt.Errorf("failed to derive public key: %w", err)
			}

			// Load the pair the way the service will before writing it.
			km, err := jwtx.NewKeyManagerFromPEM(privatePEM, publicPEM, jwtx.KeyManagerOptions{Issuer: cfg.Issuer})
			if err != nil {
				return err
			}

			if err := writeFile(privateFile, privatePEM, 0600); err != nil {
				return err
			}
			if err := writeFile(publicFile, publicPEM, 0644); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Private key: %s\n", privateFile)
			fmt.Fprintf(out, "Public key:  %s\n", publicFile)
			fmt.Fprintf(out, "Key ID:      %s\n", km.KID())
			return nil
		},
	}

	cmd.Flags().StringVar(&privateFile, "private", cfg.PrivateKeyFile, "private key output path")
	cmd.Flags().StringVar(&publicFile, "public", cfg.PublicKeyFile, "public key output path")
	cmd.Flags().IntVar(&bits, "bits", cfg.RSABits, "RSA key size")
	cmd.Flags().BoolVar(&pkcs8, "pkcs8", false, "write the private key as PKCS#8 instead of PKCS#1")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")

	return cmd
}

func writeFile(path string, data []byte, perm os.FileMode) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
