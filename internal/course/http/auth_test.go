package http_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	courseapi "github.com/gtrskylin3/CourseWebsite/internal/course/http"
	"github.com/gtrskylin3/CourseWebsite/pkg/coursesdk"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	e := newEnv(t, courseapi.TransportHeader)
	e.user("alice")

	resp := e.do(request{method: http.MethodPost, path: "/v1/users/register", json: coursesdk.RegisterRequest{
		Username: "alice", Password: "x", FirstName: "A", LastName: "B",
	}})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, "username_taken", decode[coursesdk.ErrorResponse](t, resp).Error)

	resp = e.do(request{method: http.MethodPost, path: "/v1/users/register", json: coursesdk.RegisterRequest{Username: "bob"}})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[coursesdk.ErrorResponse](t, resp)
	require.Equal(t, coursesdk.ErrorCodeInvalidRequest, body.Error)
	require.Contains(t, body.Details, "password")

	resp = e.do(request{method: http.MethodPost, path: "/v1/users/register", json: map[string]string{"nickname": "x"}})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginFailure(t *testing.T) {
	e := newEnv(t, courseapi.TransportCookie)
	e.user("alice")

	resp := e.do(request{method: http.MethodPost, path: "/v1/auth/login", form: map[string][]string{
		"username": {"alice"}, "password": {"wrong"},
	}})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, coursesdk.ErrorCodeInvalidCredentials, decode[coursesdk.ErrorResponse](t, resp).Error)
	require.Empty(t, resp.Cookies())

	// An overlong password is a wrong password, not a malformed request.
	resp = e.do(request{method: http.MethodPost, path: "/v1/auth/login", form: map[string][]string{
		"username": {"alice"}, "password": {strings.Repeat("x", 40)},
	}})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, coursesdk.ErrorCodeInvalidCredentials, decode[coursesdk.ErrorResponse](t, resp).Error)
}

func TestCookieTransport(t *testing.T) {
	e := newEnv(t, courseapi.TransportCookie)
	e.user("alice")

	resp := e.do(request{method: http.MethodPost, path: "/v1/auth/login", form: loginForm("alice")})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "no-store", resp.Header.Get("Cache-Control"))

	access := cookieNamed(resp, courseapi.AccessCookie)
	refresh := cookieNamed(resp, courseapi.RefreshCookie)
	require.NotNil(t, access)
	require.NotNil(t, refresh)

	// The cookie lives exactly as long as the token inside it.
	require.Equal(t, int(accessTTL/time.Second), access.MaxAge)
	require.Equal(t, int(refreshTTL/time.Second), refresh.MaxAge)
	require.True(t, access.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, access.SameSite)
	require.Equal(t, "/", access.Path)

	tokens := decode[coursesdk.TokenResponse](t, resp)
	require.Equal(t, access.Value, tokens.AccessToken)

	resp = e.do(request{method: http.MethodGet, path: "/v1/auth/me", cookie: []*http.Cookie{access}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "alice", decode[coursesdk.UserResponse](t, resp).Username)

	// POST works too.
	resp = e.do(request{method: http.MethodPost, path: "/v1/auth/me", cookie: []*http.Cookie{access}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// A valid token in the header is not looked at.
	resp = e.do(request{method: http.MethodGet, path: "/v1/auth/me", bearer: access.Value})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Empty(t, resp.Header.Get("WWW-Authenticate"))
	require.Equal(t, coursesdk.ErrorCodeInvalidToken, decode[coursesdk.ErrorResponse](t, resp).Error)

	// Refresh reads the refresh cookie only.
	resp = e.do(request{method: http.MethodPost, path: "/v1/auth/token/refresh", bearer: refresh.Value})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = e.do(request{method: http.MethodPost, path: "/v1/auth/token/refresh", cookie: []*http.Cookie{refresh}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rotated := cookieNamed(resp, courseapi.RefreshCookie)
	require.NotNil(t, rotated)
	require.NotEqual(t, refresh.Value, rotated.Value)
	require.NotNil(t, cookieNamed(resp, courseapi.AccessCookie))

	// Logout clears both cookies and spends the refresh token.
	resp = e.do(request{method: http.MethodGet, path: "/v1/auth/logout", cookie: []*http.Cookie{rotated}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, name := range []string{courseapi.AccessCookie, courseapi.RefreshCookie} {
		c := cookieNamed(resp, name)
		require.NotNil(t, c, name)
		require.Negative(t, c.MaxAge)
	}

	resp = e.do(request{method: http.MethodPost, path: "/v1/auth/token/refresh", cookie: []*http.Cookie{rotated}})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHeaderTransport(t *testing.T) {
	e := newEnv(t, courseapi.TransportHeader)
	e.user("alice")

	resp := e.do(request{method: http.MethodPost, path: "/v1/auth/login", json: coursesdk.LoginRequest{Username: "alice", Password: "secret"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, resp.Cookies())
	tokens := decode[coursesdk.TokenResponse](t, resp)
	require.Equal(t, "Bearer", tokens.TokenType)
	require.EqualValues(t, accessTTL/time.Second, tokens.ExpiresIn)

	resp = e.do(request{method: http.MethodGet, path: "/v1/auth/me", bearer: tokens.AccessToken})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Cookies are not looked at.
	resp = e.do(request{method: http.MethodGet, path: "/v1/auth/me", cookie: []*http.Cookie{
		{Name: courseapi.AccessCookie, Value: tokens.AccessToken},
	}})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, `Bearer error="invalid_token"`, resp.Header.Get("WWW-Authenticate"))

	// Rotation: the refresh token works once.
	resp = e.do(request{method: http.MethodPost, path: "/v1/auth/token/refresh", bearer: tokens.RefreshToken})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	next := decode[coursesdk.TokenResponse](t, resp)
	require.NotEmpty(t, next.RefreshToken)
	require.NotEqual(t, tokens.RefreshToken, next.RefreshToken)

	resp = e.do(request{method: http.MethodPost, path: "/v1/auth/token/refresh", bearer: tokens.RefreshToken})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = e.do(request{method: http.MethodPost, path: "/v1/auth/token/refresh", bearer: next.RefreshToken})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	e := newEnv(t, courseapi.TransportHeader)
	e.user("alice")
	access, refresh := e.login("alice").Tokens()

	resp := e.do(request{method: http.MethodGet, path: "/v1/auth/me", bearer: refresh})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, coursesdk.ErrorCodeInvalidToken, decode[coursesdk.ErrorResponse](t, resp).Error)

	resp = e.do(request{method: http.MethodPost, path: "/v1/auth/token/refresh", bearer: access})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestExpiredAccessToken(t *testing.T) {
	e := newEnv(t, courseapi.TransportHeader)
	e.user("alice")
	access, refresh := e.login("alice").Tokens()

	e.advance(accessTTL + time.Minute)

	resp := e.do(request{method: http.MethodGet, path: "/v1/auth/me", bearer: access})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, coursesdk.ErrorCodeTokenExpired, decode[coursesdk.ErrorResponse](t, resp).Error)
	require.Contains(t, resp.Header.Get("WWW-Authenticate"), `error="invalid_token"`)

	// The refresh token outlives the access token and restores the session.
	resp = e.do(request{method: http.MethodPost, path: "/v1/auth/token/refresh", bearer: refresh})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tokens := decode[coursesdk.TokenResponse](t, resp)
	require.NotEqual(t, access, tokens.AccessToken)

	resp = e.do(request{method: http.MethodGet, path: "/v1/auth/me", bearer: tokens.AccessToken})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "alice", decode[coursesdk.UserResponse](t, resp).Username)
}

func TestMissingAndGarbageCredentials(t *testing.T) {
	e := newEnv(t, courseapi.TransportHeader)

	for _, bearer := range []string{"", "not.a.jwt"} {
		resp := e.do(request{method: http.MethodGet, path: "/v1/auth/me", bearer: bearer})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, coursesdk.ErrorCodeInvalidToken, decode[coursesdk.ErrorResponse](t, resp).Error)
	}
}

func TestDeactivatedUserIsLockedOut(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, courseapi.TransportHeader)
	e.user("alice")
	session := e.login("alice")

	_, err := session.Me(ctx)
	require.NoError(t, err)

	_, err = e.accounts.SetActive(ctx, "alice", false)
	require.NoError(t, err)

	// The token is still cryptographically fine, the user is not.
	_, err = session.Me(ctx)
	require.ErrorIs(t, err, coursesdk.ErrInvalidToken)
	require.ErrorIs(t, session.Refresh(ctx), coursesdk.ErrInvalidToken)
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	e := newEnv(t, courseapi.TransportHeader)

	resp := e.do(request{method: http.MethodGet, path: "/v1/auth/logout"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = e.do(request{method: http.MethodGet, path: "/v1/auth/logout", bearer: "junk"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCookieSessionThroughSDK(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, courseapi.TransportCookie)
	e.user("alice")
	session := e.login("alice")

	me, err := session.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice", me.Username)

	require.NoError(t, session.Refresh(ctx))
	_, err = session.Me(ctx)
	require.NoError(t, err)

	require.NoError(t, session.Logout(ctx))
	_, err = session.Me(ctx)
	require.ErrorIs(t, err, coursesdk.ErrInvalidToken)
}
