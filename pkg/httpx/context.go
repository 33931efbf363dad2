package httpx

import "context"

type principalKey struct{}

// WithPrincipal stores the authenticated caller in ctx.
func WithPrincipal[T any](ctx context.Context, p T) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// Principal returns the caller stored by WithPrincipal, if it has type T.
func Principal[T any](ctx context.Context) (T, bool) {
	p, ok := ctx.Value(principalKey{}).(T)
	return p, ok
}
