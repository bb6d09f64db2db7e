package handlers

import (
	"net/http"

	"github.com/doorward/doorman-go/internal/httpx"
	"github.com/doorward/doorman-go/internal/version"
)

func Version(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, version.Get())
}
