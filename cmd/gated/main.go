package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/doorward/doorman-go/internal/di"
	"github.com/doorward/doorman-go/internal/server"
	"github.com/doorward/doorman-go/internal/users"
)

// gated is the flagless container entrypoint. Everything comes from env:
// DOORMAN_ADDR, DOORMAN_REALM, and DOORMAN_USERS as user:pass pairs joined
// with commas.
func main() {
	store := users.NewStore(usersFromEnv())

	h, err := server.BuildRouter(server.Deps{
		Validator: di.ProvideValidator(store),
	}, server.Options{
		EnableCORS: true,
		Realm:      os.Getenv("DOORMAN_REALM"),
	})
	if err != nil {
		log.Fatal(err)
	}

	addr := os.Getenv("DOORMAN_ADDR")
	if addr == "" {
		addr = ":8085"
	}
	log.Fatal(http.ListenAndServe(addr, h))
}

func usersFromEnv() map[string]string {
	m := map[string]string{}
	for _, pair := range strings.Split(os.Getenv("DOORMAN_USERS"), ",") {
		u, p, ok := strings.Cut(pair, ":")
		if !ok || u == "" {
			continue
		}
		m[u] = p
	}
	return m
}
