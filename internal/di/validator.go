package di

import (
	"net/http"
	"os"

	"github.com/doorward/doorman-go/internal/basicauth"
	"github.com/doorward/doorman-go/internal/users"
)

// ProvideValidator wires the configured credential source into a validator.
// DOORMAN_VALIDATOR=open waves everyone through, for local dev only.
func ProvideValidator(store *users.Store) basicauth.Validator {
	switch os.Getenv("DOORMAN_VALIDATOR") {
	case "open":
		return func(r *http.Request, _ basicauth.Attempt) (*http.Request, basicauth.Decision) {
			return r, basicauth.Authorized
		}
	default:
		return store.Validator()
	}
}
