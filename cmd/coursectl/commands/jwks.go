package commands

import (
	"fmt"

	"github.com/gtrskylin3/CourseWebsite/pkg/coursesdk"
	"github.com/gtrskylin3/CourseWebsite/pkg/jwtx"
	"github.com/spf13/cobra"
)

// NewJWKSCmd creates the jwks command
func NewJWKSCmd() *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "jwks",
		Short: "Print the service's published verification keys",
		Long:  "Fetch /.well-known/jwks.json and print every key as a PKIX PEM block, for comparing with public.pem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := coursesdk.NewSDKClient(url).GetJWKS(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch jwks: %w", err)
			}
			if len(set.Keys) == 0 {
				return fmt.Errorf("%s publishes no keys", url)
			}

			out := cmd.OutOrStdout()
			for _, key := range jwtx.JWKS(*set).Keys {
				block, err := key.PEM()
				if err != nil {
					return fmt.Errorf("key %q: %w", key.Kid, err)
				}
				fmt.Fprintf(out, "Key ID: %s\n%s", key.Kid, block)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "http://localhost:8080", "base URL of the course service")

	return cmd
}
