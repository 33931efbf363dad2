package course_test

import (
	"testing"

	"github.com/gtrskylin3/CourseWebsite/pkg/coursesdk"
	"github.com/stretchr/testify/require"
)

// TestHeaderSession covers login, refresh rotation and replay rejection
// with bearer tokens.
func TestHeaderSession(t *testing.T) {
	s := setupCourseContainer(t, "header", nil)
	client := s.client("header")

	registerUser(t, client, "alice", userPassword)

	_, err := client.Login(t.Context(), "alice", "wrong")
	require.ErrorIs(t, err, coursesdk.ErrInvalidCredentials)

	session := performLogin(t, client, "alice", userPassword)
	me, err := session.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, "alice", me.Username)

	oldAccess, oldRefresh := session.Tokens()
	require.NoError(t, session.Refresh(t.Context()))
	newAccess, newRefresh := session.Tokens()
	require.NotEqual(t, oldAccess, newAccess, "Access token should be rotated")
	require.NotEqual(t, oldRefresh, newRefresh, "Refresh token should be rotated")

	// A spent refresh token is refused.
	_, err = client.RefreshRaw(t.Context(), oldRefresh)
	require.ErrorIs(t, err, coursesdk.ErrInvalidToken)

	// A refresh token is not an access token.
	_, err = client.NewSessionFromTokens(&coursesdk.TokenResponse{
		AccessToken: newRefresh, ExpiresIn: 3600,
	}).Me(t.Context())
	require.ErrorIs(t, err, coursesdk.ErrInvalidToken)
}

// TestCookieSession covers the same flow with HttpOnly cookies.
func TestCookieSession(t *testing.T) {
	s := setupCourseContainer(t, "cookie", nil)
	client := s.client("cookie")

	registerUser(t, client, "bob", userPassword)
	session := performLogin(t, client, "bob", userPassword)

	me, err := session.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, "bob", me.Username)

	require.NoError(t, session.Refresh(t.Context()))
	_, err = session.Me(t.Context())
	require.NoError(t, err)

	require.NoError(t, session.Logout(t.Context()))
	_, err = session.Me(t.Context())
	require.ErrorIs(t, err, coursesdk.ErrInvalidToken)
}

// TestDeactivatedAccount verifies coursectl locks an account out of its
// existing session.
func TestDeactivatedAccount(t *testing.T) {
	s := setupCourseContainer(t, "header", nil)
	client := s.client("header")

	registerUser(t, client, "carol", userPassword)
	session := performLogin(t, client, "carol", userPassword)

	out := s.coursectl(t, "user", "deactivate", "carol")
	require.Contains(t, out, "carol")

	_, err := session.Me(t.Context())
	require.ErrorIs(t, err, coursesdk.ErrInvalidToken)

	_, err = client.Login(t.Context(), "carol", userPassword)
	require.ErrorIs(t, err, coursesdk.ErrInvalidCredentials)
}
