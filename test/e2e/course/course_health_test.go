package course_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHealthEndpoints verifies liveness, readiness and the key set on a
// fresh container.
func TestHealthEndpoints(t *testing.T) {
	s := setupCourseContainer(t, "header", nil)
	client := s.client("header")

	live, err := client.GetLiveness(t.Context())
	assertHealthy(t, live, err)

	ready, err := client.GetReadiness(t.Context())
	assertHealthy(t, ready, err)
	require.Equal(t, "ok", ready.Checks.Database)

	jwks, err := client.GetJWKS(t.Context())
	require.NoError(t, err)
	require.Len(t, jwks.Keys, 1)
	require.Equal(t, "RSA", jwks.Keys[0].Kty)
	require.Equal(t, "RS256", jwks.Keys[0].Alg)
	require.NotEmpty(t, jwks.Keys[0].Kid)

	t.Logf("JWKS key id %s", jwks.Keys[0].Kid)
}
