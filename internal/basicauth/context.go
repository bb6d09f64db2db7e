package basicauth

import (
	"context"
	"net/http"
)

type usernameKey struct{}

// WithUsername returns a request whose context records the authenticated
// principal. Meant for validators that want handlers downstream to know who
// got in.
func WithUsername(r *http.Request, username string) *http.Request {
	ctx := context.WithValue(r.Context(), usernameKey{}, username)
	return r.WithContext(ctx)
}

// UsernameFromContext reports the principal recorded by WithUsername.
func UsernameFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(usernameKey{})
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
