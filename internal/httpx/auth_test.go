package httpx

import "testing"

func TestCutScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		authz   string
		scheme  string
		payload string
		ok      bool
	}{
		{"basic", "Basic dXNlcjpwYXNz", "Basic", "dXNlcjpwYXNz", true},
		{"empty value", "", "Basic", "", false},
		{"wrong scheme", "Bearer tok", "Basic", "", false},
		{"case sensitive", "basic dXNlcjpwYXNz", "Basic", "", false},
		{"no separator", "Basic", "Basic", "", false},
		{"payload kept verbatim", "Basic  padded", "Basic", " padded", true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			payload, ok := CutScheme(tc.authz, tc.scheme)
			if ok != tc.ok {
				t.Fatalf("ok = %t, want %t", ok, tc.ok)
			}
			if payload != tc.payload {
				t.Fatalf("payload = %q, want %q", payload, tc.payload)
			}
		})
	}
}
