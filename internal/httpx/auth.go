package httpx

import "strings"

// CutScheme splits an Authorization header value into its payload when the
// value uses the given scheme. The scheme token is matched case-sensitively
// and must be followed by exactly one space; anything else reports false.
func CutScheme(authz, scheme string) (string, bool) {
	prefix := scheme + " "
	if authz == "" || !strings.HasPrefix(authz, prefix) {
		return "", false
	}
	return authz[len(prefix):], true
}
