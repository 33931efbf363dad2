package httpx

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

// ErrNoCredential means the request carried nothing where we looked.
var ErrNoCredential = errors.New("httpx: no credential")

// CredentialSource pulls a raw token out of a request. Sources never look
// anywhere but their own location.
type CredentialSource interface {
	Credential(r *http.Request) (string, error)
}

// CookieSource reads the token from the named cookie.
type CookieSource struct {
	Name string
}

func (s CookieSource) Credential(r *http.Request) (string, error) {
	c, err := r.Cookie(s.Name)
	if err != nil || c.Value == "" {
		return "", ErrNoCredential
	}
	return c.Value, nil
}

// BearerSource reads the token from "Authorization: Bearer <token>".
type BearerSource struct{}

func (BearerSource) Credential(r *http.Request) (string, error) {
	authz := r.Header.Get("Authorization")

	scheme, raw, ok := strings.Cut(authz, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrNoCredential
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrNoCredential
	}
	return raw, nil
}

// CookieOptions are the attributes shared by every token cookie.
type CookieOptions struct {
	Secure bool
	Path   string // defaults to "/"
}

// SetTokenCookie writes an HttpOnly, SameSite=Lax cookie whose lifetime
// matches the token's.
func SetTokenCookie(w http.ResponseWriter, name, value string, ttl time.Duration, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     cookiePath(opts),
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearTokenCookie tells the client to drop the cookie.
func ClearTokenCookie(w http.ResponseWriter, name string, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     cookiePath(opts),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func cookiePath(opts CookieOptions) string {
	if opts.Path == "" {
		return "/"
	}
	return opts.Path
}

// WriteBearerChallenge sets an RFC 6750 WWW-Authenticate header.
func WriteBearerChallenge(w http.ResponseWriter, code, desc string) {
	v := `Bearer error="` + code + `"`
	if desc != "" {
		v += `, error_description="` + desc + `"`
	}
	w.Header().Set("WWW-Authenticate", v)
}
