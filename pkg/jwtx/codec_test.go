package jwtx_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/gtrskylin3/CourseWebsite/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T, now func() time.Time) *jwtx.Codec {
	t.Helper()

	privPEM, pubPEM := newTestKeyPEM(t)
	km, err := jwtx.NewKeyManagerFromPEM(privPEM, pubPEM, jwtx.KeyManagerOptions{
		Issuer: exampleIssuer,
		Now:    now,
	})
	require.NoError(t, err)

	codec := jwtx.NewCodec(km, jwtx.DefaultAccessTokenTTL)
	codec.Now = now
	return codec
}

func TestCodecRoundTrip(t *testing.T) {
	codec := newTestCodec(t, nil)

	in := jwtx.NewAccessClaims(99, exampleIssuer, "erin", "Erin", "E", true)
	token, stampedClaims, err := codec.Issue(in, 15*time.Minute)
	require.NoError(t, err)
	require.Equal(t, 15*time.Minute, stampedClaims.TTL())

	out, err := codec.Verify(token)
	require.NoError(t, err)
	require.Equal(t, stampedClaims.Subject, out.Subject)
	require.Equal(t, stampedClaims.Type, out.Type)
	require.Equal(t, stampedClaims.Username, out.Username)
	require.Equal(t, stampedClaims.ExpiresAt.Unix(), out.ExpiresAt.Unix())
	require.Equal(t, stampedClaims.IssuedAt.Unix(), out.IssuedAt.Unix())
}

func TestCodecDefaultTTL(t *testing.T) {
	codec := newTestCodec(t, nil)
	codec.DefaultTTL = 7 * time.Minute

	_, claims, err := codec.Issue(jwtx.NewRefreshClaims(1, "", "x"), 0)
	require.NoError(t, err)
	require.Equal(t, 7*time.Minute, claims.TTL())

	codec.DefaultTTL = 0
	_, claims, err = codec.Issue(jwtx.NewRefreshClaims(1, "", "x"), 0)
	require.NoError(t, err)
	require.Equal(t, jwtx.DefaultAccessTokenTTL, claims.TTL())
}

func TestCodecNegativeExpiryIsExpired(t *testing.T) {
	codec := newTestCodec(t, nil)

	token, claims, err := codec.Issue(jwtx.NewAccessClaims(1, exampleIssuer, "x", "X", "Y", true), -time.Second)
	require.NoError(t, err)
	require.Equal(t, -time.Second, claims.TTL())

	_, err = codec.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestCodecExpiryBoundary(t *testing.T) {
	issuedAt := time.Unix(1_700_000_000, 0).UTC()
	clock := issuedAt

	codec := newTestCodec(t, func() time.Time { return clock })

	token, err := codec.Sign(jwtx.NewRefreshClaims(1, exampleIssuer, "x"), time.Hour)
	require.NoError(t, err)

	clock = issuedAt.Add(time.Hour - time.Second)
	_, err = codec.Verify(token)
	require.NoError(t, err)

	clock = issuedAt.Add(time.Hour + time.Second)
	_, err = codec.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
	require.NotErrorIs(t, err, jwtx.ErrMalformed)
}

func TestCodecRejectsAlreadyExpired(t *testing.T) {
	codec := newTestCodec(t, nil)

	token, err := codec.Sign(jwtx.NewRefreshClaims(1, exampleIssuer, "x"), time.Hour)
	require.NoError(t, err)

	// Shift the verifier past exp without touching the signature.
	verifier := jwtx.NewCommonRS256(mustKeySet(t, codec), jwtx.VerifyOptions{
		Now: func() time.Time { return time.Now().Add(2 * time.Hour) },
	})
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func mustKeySet(t *testing.T, codec *jwtx.Codec) *jwtx.KeySet {
	t.Helper()
	ks := jwtx.NewKeySet()
	require.NoError(t, ks.AddSigner(codec.Signer))
	return ks
}

func TestCodecRejectsTamperedPayload(t *testing.T) {
	codec := newTestCodec(t, nil)

	token, err := codec.Sign(jwtx.NewAccessClaims(1, exampleIssuer, "x", "", "", true), time.Hour)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	for i := range payload {
		forged := make([]byte, len(payload))
		copy(forged, payload)
		forged[i] ^= 0x01

		raw := parts[0] + "." + base64.RawURLEncoding.EncodeToString(forged) + "." + parts[2]
		_, err := codec.Verify(raw)
		require.ErrorIs(t, err, jwtx.ErrMalformed, "byte %d", i)
	}
}

func TestCodecRejectsGarbage(t *testing.T) {
	codec := newTestCodec(t, nil)

	for _, raw := range []string{"", "abc", "a.b.c", "a.b", "....", "eyJhbGciOiJSUzI1NiJ9.e30."} {
		_, err := codec.Verify(raw)
		require.ErrorIs(t, err, jwtx.ErrMalformed, "token %q", raw)
	}
}

func TestCodecWithoutKeys(t *testing.T) {
	var codec jwtx.Codec

	_, err := codec.Sign(jwtx.NewRefreshClaims(1, "", "x"), time.Minute)
	require.Error(t, err)

	_, err = codec.Verify("a.b.c")
	require.Error(t, err)
}
