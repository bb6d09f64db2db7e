// Package basicauth gates a chi (or any net/http) pipeline behind HTTP Basic
// Authentication (RFC 7617). The filter extracts credentials from the
// Authorization header and hands the decision to a caller-supplied Validator;
// it knows nothing about where credentials live.
package basicauth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/doorward/doorman-go/internal/httpx"
)

const scheme = "Basic"

// DefaultRealm is the protection-space name quoted in the challenge when
// WithRealm is not used.
const DefaultRealm = "Private Area"

var (
	// ErrNoValidator is returned by New when no validator was configured.
	// The filter is unusable without one.
	ErrNoValidator = errors.New("basicauth: validator is required")

	// ErrMalformedCredentials covers a Basic header whose payload is not
	// valid base64, or decodes to something without a colon. Such requests
	// are answered 400 before any validator runs.
	ErrMalformedCredentials = errors.New("basicauth: malformed credentials")
)

type config struct {
	validator    Validator
	realm        string
	unauthorized http.HandlerFunc
}

// New builds the filter middleware. A Validator is mandatory; everything
// else has defaults.
func New(opts ...Option) (func(http.Handler) http.Handler, error) {
	cfg := &config{realm: DefaultRealm}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.validator == nil {
		return nil, ErrNoValidator
	}
	if cfg.unauthorized == nil {
		cfg.unauthorized = Challenge(cfg.realm)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempt, err := ParseAuthorization(r.Header.Get("Authorization"))
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, httpx.SafeErrMsg(err))
				return
			}
			r2, decision := cfg.validator(r, attempt)
			if r2 != nil {
				r = r2
			}
			if decision != Authorized {
				cfg.unauthorized(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}, nil
}

// MustNew is New for router literals; it panics on a configuration error.
func MustNew(opts ...Option) func(http.Handler) http.Handler {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Challenge writes the stock 401 response: one WWW-Authenticate header, the
// status, an empty body, in that order.
func Challenge(realm string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("WWW-Authenticate", fmt.Sprintf("%s realm=%q", scheme, realm))
		w.WriteHeader(http.StatusUnauthorized)
	}
}

// ParseAuthorization turns an Authorization header value into an Attempt.
// No header, or a scheme other than the literal "Basic " prefix, is an
// absent attempt; the validator hears about those and decides the response.
// A Basic payload that is not standard base64, or decodes to no colon at
// all, is ErrMalformedCredentials. The split is on the first colon only, so
// passwords keep embedded colons.
func ParseAuthorization(header string) (Attempt, error) {
	payload, ok := httpx.CutScheme(header, scheme)
	if !ok {
		return NoCredentials(), nil
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Attempt{}, fmt.Errorf("%w: %v", ErrMalformedCredentials, err)
	}
	username, password, ok := strings.Cut(string(raw), ":")
	if !ok {
		return Attempt{}, fmt.Errorf("%w: missing colon separator", ErrMalformedCredentials)
	}
	return CredentialsAttempt(username, password), nil
}
