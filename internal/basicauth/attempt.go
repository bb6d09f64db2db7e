package basicauth

import "net/http"

// Credentials is the username/password pair a client presented in a Basic
// Authorization header. Empty strings are legal values, not absence.
type Credentials struct {
	Username string
	Password string
}

// Attempt is what a Validator is asked to judge: either the credentials the
// client presented, or nothing at all. Exactly one of the two holds per
// request; a malformed header never becomes an Attempt.
type Attempt struct {
	creds   Credentials
	present bool
}

// CredentialsAttempt wraps a parsed pair.
func CredentialsAttempt(username, password string) Attempt {
	return Attempt{creds: Credentials{Username: username, Password: password}, present: true}
}

// NoCredentials marks a request that carried no usable Basic credentials,
// either no Authorization header at all or a scheme other than Basic.
func NoCredentials() Attempt { return Attempt{} }

// Credentials returns the presented pair, if any.
func (a Attempt) Credentials() (Credentials, bool) { return a.creds, a.present }

// Absent reports whether the request carried no credentials.
func (a Attempt) Absent() bool { return !a.present }

// Decision is the outcome of a validation call.
type Decision int

const (
	Unauthorized Decision = iota
	Authorized
)

// Validator decides whether an attempt may proceed. It receives the request
// and returns the request the pipeline should continue with, so it can hang
// values off the context (see WithUsername). Returning the request it was
// given is fine. The filter awaits the result and never retries.
type Validator func(r *http.Request, attempt Attempt) (*http.Request, Decision)
