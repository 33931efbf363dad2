package http

import (
	"fmt"
	"net/http"

	"github.com/gtrskylin3/CourseWebsite/internal/course/domain"
	"github.com/gtrskylin3/CourseWebsite/pkg/coursesdk"
	"github.com/gtrskylin3/CourseWebsite/pkg/httpx"
)

// Transport modes accepted in AUTH_TRANSPORT.
const (
	TransportCookie = "cookie"
	TransportHeader = "header"
)

// Cookie names used by the cookie transport.
const (
	AccessCookie  = "access_token"
	RefreshCookie = "refresh_token"
)

// Transport decides where tokens travel. A deployment uses exactly one mode
// and a request is never looked up in the other mode's location.
type Transport struct {
	Mode    string
	Cookies httpx.CookieOptions

	Access  httpx.CredentialSource
	Refresh httpx.CredentialSource
}

// NewTransport builds the transport for mode.
func NewTransport(mode string, cookies httpx.CookieOptions) (Transport, error) {
	switch mode {
	case TransportCookie, "":
		return Transport{
			Mode:    TransportCookie,
			Cookies: cookies,
			Access:  httpx.CookieSource{Name: AccessCookie},
			Refresh: httpx.CookieSource{Name: RefreshCookie},
		}, nil
	case TransportHeader:
		return Transport{
			Mode:    TransportHeader,
			Access:  httpx.BearerSource{},
			Refresh: httpx.BearerSource{},
		}, nil
	default:
		return Transport{}, fmt.Errorf("http: unknown transport %q", mode)
	}
}

// ValidTransport reports whether mode names a transport.
func ValidTransport(mode string) bool {
	return mode == TransportCookie || mode == TransportHeader
}

func (t Transport) usesCookies() bool {
	return t.Mode == TransportCookie
}

// deliver hands freshly issued tokens to the client. The body always carries
// them; the cookie transport also sets cookies that expire with the tokens.
func (t Transport) deliver(w http.ResponseWriter, pair domain.TokenPair) {
	if t.usesCookies() {
		httpx.SetTokenCookie(w, AccessCookie, pair.Access.Value, pair.Access.TTL, t.Cookies)
		if pair.Refresh != nil {
			httpx.SetTokenCookie(w, RefreshCookie, pair.Refresh.Value, pair.Refresh.TTL, t.Cookies)
		}
	}
	httpx.WriteJSON(w, http.StatusOK, pair.Response())
}

func (t Transport) clear(w http.ResponseWriter) {
	if !t.usesCookies() {
		return
	}
	httpx.ClearTokenCookie(w, AccessCookie, t.Cookies)
	httpx.ClearTokenCookie(w, RefreshCookie, t.Cookies)
}

// writeAuthError renders a failed credential. Only the header transport
// answers with a Bearer challenge.
func (t Transport) writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := toAPIError(r, err)
	if !t.usesCookies() && apiErr.StatusCode == http.StatusUnauthorized {
		desc := ""
		if apiErr.Code == coursesdk.ErrorCodeTokenExpired {
			desc = apiErr.Description
		}
		httpx.WriteBearerChallenge(w, coursesdk.ErrorCodeInvalidToken, desc)
	}
	apiErr.WriteError(w)
}
