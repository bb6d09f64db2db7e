package basicauth

import "net/http"

// Option configures the filter at construction time.
type Option func(*config)

// WithValidator sets the decision function. Required; New fails without it.
func WithValidator(v Validator) Option {
	return func(cfg *config) { cfg.validator = v }
}

// WithRealm sets the realm quoted in the WWW-Authenticate challenge.
// Default: "Private Area".
func WithRealm(realm string) Option {
	return func(cfg *config) { cfg.realm = realm }
}

// WithUnauthorizedHandler replaces the default 401 challenge, for callers
// that want a custom body or a redirect instead.
func WithUnauthorizedHandler(h http.HandlerFunc) Option {
	return func(cfg *config) { cfg.unauthorized = h }
}
