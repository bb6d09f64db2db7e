package handlers

import (
	"net/http"

	"github.com/doorward/doorman-go/internal/basicauth"
	"github.com/doorward/doorman-go/internal/httpx"
)

type whoAmIResp struct {
	Username string `json:"username"`
}

// WhoAmI reports the principal the validator recorded on the context.
func WhoAmI(w http.ResponseWriter, r *http.Request) {
	username, ok := basicauth.UsernameFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, whoAmIResp{Username: username})
}
