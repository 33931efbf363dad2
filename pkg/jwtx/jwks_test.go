package jwtx_test

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"testing"

	"github.com/gtrskylin3/CourseWebsite/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestRSAJWKToPEMRoundTrip(t *testing.T) {
	_, pubPEM := newTestKeyPEM(t)

	block, _ := pem.Decode(pubPEM)
	require.NotNil(t, block)
	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	require.NoError(t, err)
	pub := parsed.(*rsa.PublicKey)

	jwk := jwtx.NewRSAJWK("kid-1", "sig", jwtx.AlgorithmRS256, pub)
	require.Equal(t, "RSA", jwk.Kty)
	require.Equal(t, "AQAB", jwk.E)

	out, err := jwk.PEM()
	require.NoError(t, err)
	require.Equal(t, string(pubPEM), out)
}

func TestJWKThumbprint(t *testing.T) {
	// Example key from RFC 7638 section 3.1.
	jwk := jwtx.JWK{
		Kty: "RSA",
		N: "0vx7agoebGcQSuuPiLJXZptN9nndrQmbXEps2aiAFbWhM78LhWx4cbbfAAtVT86zwu1RK7aPFFxuhDR1L6tSoc_BJECP" +
			"ebWKRXjBZCiFV4n3oknjhMstn64tZ_2W-5JsGY4Hc5n9yBXArwl93lqt7_RN5w6Cf0h4QyQ5v-65YGjQR0_FDW2QvzqY" +
			"368QQMicAtaSqzs8KJZgnYb9c7d0zgdAZHzu6qMQvRL5hajrn1n91CbOpbISD08qNLyrdkt-bFTWhAI4vMQFh6WeZu0f" +
			"M4lFd2NcRwr3XPksINHaQ-G_xBniIqbw0Ls1jF44-csFCur-kEgU8awapJzKnqDKgw",
		E:   "AQAB",
		Alg: "RS256",
		Kid: "2011-04-29",
	}

	require.Equal(t, "NzbLsXh8uDCcd-6MNwXF4W_7noWXFZAfHkxZsRGC9Xs", jwk.Thumbprint())

	// Optional members do not change it.
	jwk.Use = "sig"
	jwk.Kid = ""
	require.Equal(t, "NzbLsXh8uDCcd-6MNwXF4W_7noWXFZAfHkxZsRGC9Xs", jwk.Thumbprint())
}

func TestKeySet(t *testing.T) {
	privA, _ := newTestKeyPEM(t)
	privB, _ := newTestKeyPEM(t)

	a, err := jwtx.NewSignerRS256("a", privA)
	require.NoError(t, err)
	b, err := jwtx.NewSignerRS256("b", privB)
	require.NoError(t, err)

	ks := jwtx.NewKeySet()
	require.False(t, ks.IsReady())

	_, err = ks.Sole()
	require.ErrorIs(t, err, jwtx.ErrNoKey)

	require.NoError(t, ks.AddSigner(a))
	require.True(t, ks.IsReady())

	sole, err := ks.Sole()
	require.NoError(t, err)
	got, err := ks.Get("a")
	require.NoError(t, err)
	require.Equal(t, got, sole)

	require.NoError(t, ks.AddSigner(b))
	_, err = ks.Sole()
	require.ErrorIs(t, err, jwtx.ErrAmbiguousKey)

	_, err = ks.Get("c")
	require.ErrorIs(t, err, jwtx.ErrNoKey)

	jwks := ks.PublicJWKS()
	require.Len(t, jwks.Keys, 2)

	// The snapshot is a copy.
	jwks.Keys[0].Kid = "mutated"
	require.Equal(t, "a", ks.PublicJWKS().Keys[0].Kid)
}

func TestKeySetRejectsNonRSA(t *testing.T) {
	ks := jwtx.NewKeySet()
	err := ks.AddJWK(jwtx.JWK{Kty: "OKP", N: "", E: ""})
	require.Error(t, err)
}

func TestJWKSJSON(t *testing.T) {
	privPEM, _ := newTestKeyPEM(t)
	s, err := jwtx.NewSignerRS256("kid-json", privPEM)
	require.NoError(t, err)

	ks := jwtx.NewKeySet()
	require.NoError(t, ks.AddSigner(s))

	raw, err := json.Marshal(ks.PublicJWKS())
	require.NoError(t, err)

	var doc map[string][]map[string]string
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Len(t, doc["keys"], 1)

	key := doc["keys"][0]
	require.Equal(t, "RSA", key["kty"])
	require.Equal(t, "RS256", key["alg"])
	require.Equal(t, "sig", key["use"])
	require.Equal(t, "kid-json", key["kid"])
	require.NotEmpty(t, key["n"])
	require.NotContains(t, key, "d")
}
