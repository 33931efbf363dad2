package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gtrskylin3/CourseWebsite/internal/course/domain"
	"github.com/gtrskylin3/CourseWebsite/internal/course/service"
	"github.com/gtrskylin3/CourseWebsite/pkg/httpx"
	"github.com/gtrskylin3/CourseWebsite/pkg/slogx"
)

// Authn resolves the access token from the transport's access location and
// stores the user in the request context. Requests without an active user
// never reach next.
func Authn(t Transport, resolver *service.Resolver) httpx.Middleware {
	authn := func(ctx context.Context, raw string) (context.Context, error) {
		u, err := resolver.ResolveAccess(ctx, raw)
		if err != nil {
			return ctx, err
		}
		ctx = httpx.WithPrincipal(ctx, u)
		return slogx.WithUserID(ctx, u.ID), nil
	}

	onErr := func(w http.ResponseWriter, r *http.Request, err error) {
		if errors.Is(err, httpx.ErrNoCredential) {
			resolver.RecordMissing(r.Context())
		}
		t.writeAuthError(w, r, err)
	}

	return httpx.AuthnMiddleware(t.Access, authn, onErr)
}

// RequireAdmin goes after Authn.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := currentUser(r)
		if !ok {
			writeError(w, r, service.ErrUnauthenticated)
			return
		}
		if err := service.RequireAdmin(u); err != nil {
			slogx.FromContext(r.Context()).Warn("admin route refused", "path", r.URL.Path)
			writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func currentUser(r *http.Request) (domain.User, bool) {
	return httpx.Principal[domain.User](r.Context())
}
