package handlers

import (
	"net/http"

	"github.com/doorward/doorman-go/internal/httpx"
)

// Party greets anyone the gate let through.
func Party(w http.ResponseWriter, r *http.Request) {
	httpx.WriteText(w, http.StatusOK, "Welcome to the party.")
}
