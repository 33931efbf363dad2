package httpx

import (
	"context"
	"net/http"
)

// Authenticator resolves a raw credential and returns the request context
// enriched with the caller.
type Authenticator func(ctx context.Context, raw string) (context.Context, error)

// ErrorWriter renders a failed authentication. It receives ErrNoCredential
// when the request carried nothing.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// AuthnMiddleware stops every request whose credential does not resolve.
func AuthnMiddleware(src CredentialSource, authn Authenticator, onErr ErrorWriter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := src.Credential(r)
			if err != nil {
				onErr(w, r, err)
				return
			}

			ctx, err := authn(r.Context(), raw)
			if err != nil {
				onErr(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
