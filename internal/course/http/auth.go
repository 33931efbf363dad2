package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gtrskylin3/CourseWebsite/internal/course/service"
	"github.com/gtrskylin3/CourseWebsite/pkg/coursesdk"
	"github.com/gtrskylin3/CourseWebsite/pkg/httpx"
	"github.com/gtrskylin3/CourseWebsite/pkg/slogx"
)

// AuthHandler serves registration, login, logout, refresh and the current
// user.
type AuthHandler struct {
	Accounts  *service.AccountService
	Refresher *service.Refresher
	Transport Transport
}

// HandleRegister godoc
//
//	@Summary		Register
//	@Description	Creates an active, non-admin account.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		coursesdk.RegisterRequest	true	"New account"
//	@Success		201		{object}	coursesdk.UserResponse
//	@Failure		400		{object}	coursesdk.ErrorResponse	"invalid_request"
//	@Failure		409		{object}	coursesdk.ErrorResponse	"username_taken"
//	@Router			/v1/users/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req coursesdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w, err)
		return
	}

	u, err := h.Accounts.Register(r.Context(), service.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	slogx.FromContext(r.Context()).Info("user registered", "user_id", u.ID)
	httpx.WriteJSON(w, http.StatusCreated, u.Public())
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Exchanges a username and password for an access and a refresh token.
//	@Description	Accepts a form body or JSON. With the cookie transport both tokens are also set as HttpOnly cookies.
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded,json
//	@Produce		json
//	@Param			username	formData	string	true	"Username"
//	@Param			password	formData	string	true	"Password"
//	@Success		200			{object}	coursesdk.TokenResponse
//	@Failure		400			{object}	coursesdk.ErrorResponse	"invalid_request"
//	@Failure		401			{object}	coursesdk.ErrorResponse	"invalid_credentials"
//	@Header			200			{string}	Cache-Control	"no-store"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	in, err := decodeLogin(w, r)
	if err != nil {
		writeBadBody(w, err)
		return
	}

	u, pair, err := h.Accounts.Login(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	slogx.FromContext(r.Context()).Info("user logged in", "user_id", u.ID)
	h.Transport.deliver(w, pair)
}

func decodeLogin(w http.ResponseWriter, r *http.Request) (service.LoginInput, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req coursesdk.LoginRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			return service.LoginInput{}, err
		}
		return service.LoginInput{Username: req.Username, Password: req.Password}, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, httpx.MaxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return service.LoginInput{}, errors.New("http: invalid form body")
	}
	return service.LoginInput{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}, nil
}

// HandleMe godoc
//
//	@Summary		Current user
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	coursesdk.UserResponse
//	@Failure		401	{object}	coursesdk.ErrorResponse	"invalid_token or token_expired"
//	@Router			/v1/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(r)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u.Public())
}

// HandleLogout godoc
//
//	@Summary		Log out
//	@Description	Clears the token cookies and, with refresh rotation on, spends the presented refresh token.
//	@Description	Access tokens already handed out stay valid until they expire. Always succeeds.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	coursesdk.MessageResponse
//	@Router			/v1/auth/logout [get].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if raw, err := h.Transport.Refresh.Credential(r); err == nil {
		if err := h.Refresher.Revoke(r.Context(), raw); err != nil {
			slogx.FromContext(r.Context()).Warn("logout revoke failed", "err", err)
		}
	}

	h.Transport.clear(w)
	httpx.WriteJSON(w, http.StatusOK, coursesdk.MessageResponse{Message: "logged out"})
}

// HandleRefresh godoc
//
//	@Summary		Refresh tokens
//	@Description	Trades a refresh token for a new access token. With rotation on a new refresh token
//	@Description	is returned and the presented one stops working.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	coursesdk.TokenResponse
//	@Failure		401	{object}	coursesdk.ErrorResponse	"invalid_token or token_expired"
//	@Header			200	{string}	Cache-Control	"no-store"
//	@Router			/v1/auth/token/refresh [post].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	raw, err := h.Transport.Refresh.Credential(r)
	if err != nil {
		h.Refresher.Resolver.RecordMissing(r.Context())
		h.Transport.writeAuthError(w, r, err)
		return
	}

	res, err := h.Refresher.Refresh(r.Context(), raw)
	if err != nil {
		h.Transport.writeAuthError(w, r, err)
		return
	}

	h.Transport.deliver(w, res.Tokens)
}
