package basicauth

import (
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func encode(pair string) string {
	return base64.StdEncoding.EncodeToString([]byte(pair))
}

func TestParseAuthorization_AbsentCases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"bearer scheme", "Bearer abc123"},
		{"lowercase scheme", "basic " + encode("user:pass")},
		{"scheme without payload", "Basic"},
		{"tab separator", "Basic\t" + encode("user:pass")},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			attempt, err := ParseAuthorization(tc.header)
			if err != nil {
				t.Fatalf("err = %v, want nil", err)
			}
			if !attempt.Absent() {
				t.Fatalf("Absent() = false, want true")
			}
			if _, ok := attempt.Credentials(); ok {
				t.Fatalf("Credentials() ok = true, want false")
			}
		})
	}
}

func TestParseAuthorization_Malformed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		header string
	}{
		{"not base64", "Basic !!!not-base64!!!"},
		{"no colon in payload", "Basic " + encode("justausername")},
		{"empty payload", "Basic " + encode("")},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseAuthorization(tc.header)
			if !errors.Is(err, ErrMalformedCredentials) {
				t.Fatalf("err = %v, want ErrMalformedCredentials", err)
			}
		})
	}
}

func TestParseAuthorization_Pairs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		pair     string
		username string
		password string
	}{
		{"plain pair", "Snorky:Capone", "Snorky", "Capone"},
		{"colons stay in password", "user:a:b:c", "user", "a:b:c"},
		{"empty username", ":secret", "", "secret"},
		{"empty password", "user:", "user", ""},
		{"both empty", ":", "", ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			attempt, err := ParseAuthorization("Basic " + encode(tc.pair))
			if err != nil {
				t.Fatalf("err = %v, want nil", err)
			}
			creds, ok := attempt.Credentials()
			if !ok {
				t.Fatalf("Credentials() ok = false, want true")
			}
			if creds.Username != tc.username {
				t.Fatalf("Username = %q, want %q", creds.Username, tc.username)
			}
			if creds.Password != tc.password {
				t.Fatalf("Password = %q, want %q", creds.Password, tc.password)
			}
		})
	}
}

func TestNew_RequiresValidator(t *testing.T) {
	t.Parallel()

	if _, err := New(); !errors.Is(err, ErrNoValidator) {
		t.Fatalf("New() err = %v, want ErrNoValidator", err)
	}
	if _, err := New(WithRealm("Anywhere")); !errors.Is(err, ErrNoValidator) {
		t.Fatalf("New(WithRealm) err = %v, want ErrNoValidator", err)
	}
}

func TestMustNew_PanicsWithoutValidator(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("MustNew() did not panic")
		}
	}()
	MustNew()
}

func allow(r *http.Request, _ Attempt) (*http.Request, Decision) {
	return r, Authorized
}

func deny(r *http.Request, _ Attempt) (*http.Request, Decision) {
	return r, Unauthorized
}

func serve(t *testing.T, gate func(http.Handler) http.Handler, next http.Handler, header string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/party", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	gate(next).ServeHTTP(w, req)
	return w
}

func TestFilter_AuthorizedPassesThroughUntouched(t *testing.T) {
	t.Parallel()

	gate := MustNew(WithValidator(allow))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("downstream"))
	})

	w := serve(t, gate, next, "Basic "+encode("Snorky:Capone"))

	if w.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusTeapot)
	}
	if got := w.Body.String(); got != "downstream" {
		t.Fatalf("body = %q, want %q", got, "downstream")
	}
	if v := w.Header().Get("WWW-Authenticate"); v != "" {
		t.Fatalf("WWW-Authenticate = %q, want empty", v)
	}
}

func TestFilter_UnauthorizedChallenge(t *testing.T) {
	t.Parallel()

	gate := MustNew(WithValidator(deny))
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	w := serve(t, gate, next, "Basic "+encode("Snorky:Capone"))

	if called {
		t.Fatalf("downstream handler ran on unauthorized request")
	}
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if got, want := w.Header().Get("WWW-Authenticate"), `Basic realm="Private Area"`; got != want {
		t.Fatalf("WWW-Authenticate = %q, want %q", got, want)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("body = %q, want empty", w.Body.String())
	}
}

func TestFilter_AbsentAttemptReachesValidator(t *testing.T) {
	t.Parallel()

	var seen *Attempt
	gate := MustNew(WithValidator(func(r *http.Request, a Attempt) (*http.Request, Decision) {
		seen = &a
		return r, Unauthorized
	}))

	serve(t, gate, http.NotFoundHandler(), "")

	if seen == nil {
		t.Fatalf("validator was not invoked")
	}
	if !seen.Absent() {
		t.Fatalf("attempt.Absent() = false, want true")
	}
}

func TestFilter_MalformedSkipsValidator(t *testing.T) {
	t.Parallel()

	gate := MustNew(WithValidator(func(r *http.Request, a Attempt) (*http.Request, Decision) {
		t.Fatalf("validator must not run for malformed credentials")
		return r, Unauthorized
	}))

	w := serve(t, gate, http.NotFoundHandler(), "Basic %%%garbage%%%")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestFilter_ValidatorRequestIsAuthoritative(t *testing.T) {
	t.Parallel()

	gate := MustNew(WithValidator(func(r *http.Request, a Attempt) (*http.Request, Decision) {
		creds, _ := a.Credentials()
		return WithUsername(r, creds.Username), Authorized
	}))
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = UsernameFromContext(r.Context())
	})

	serve(t, gate, next, "Basic "+encode("Snorky:Capone"))

	if got != "Snorky" {
		t.Fatalf("username in downstream context = %q, want %q", got, "Snorky")
	}
}

func TestFilter_FirstHeaderValueWins(t *testing.T) {
	t.Parallel()

	var creds Credentials
	gate := MustNew(WithValidator(func(r *http.Request, a Attempt) (*http.Request, Decision) {
		creds, _ = a.Credentials()
		return r, Authorized
	}))

	req := httptest.NewRequest(http.MethodGet, "/party", nil)
	req.Header.Add("Authorization", "Basic "+encode("first:one"))
	req.Header.Add("Authorization", "Basic "+encode("second:two"))
	w := httptest.NewRecorder()
	gate(http.NotFoundHandler()).ServeHTTP(w, req)

	if creds.Username != "first" {
		t.Fatalf("Username = %q, want %q", creds.Username, "first")
	}
}

func TestFilter_CustomRealm(t *testing.T) {
	t.Parallel()

	gate := MustNew(WithValidator(deny), WithRealm("Back Office"))

	w := serve(t, gate, http.NotFoundHandler(), "")

	if got, want := w.Header().Get("WWW-Authenticate"), `Basic realm="Back Office"`; got != want {
		t.Fatalf("WWW-Authenticate = %q, want %q", got, want)
	}
}

func TestFilter_CustomUnauthorizedHandler(t *testing.T) {
	t.Parallel()

	gate := MustNew(
		WithValidator(deny),
		WithUnauthorizedHandler(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "beat it", http.StatusForbidden)
		}),
	)

	w := serve(t, gate, http.NotFoundHandler(), "")

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}
