package server

import (
	"net/http"
	"os"

	"github.com/doorward/doorman-go/internal/basicauth"
	"github.com/doorward/doorman-go/internal/handlers"
	"github.com/doorward/doorman-go/internal/httpx"
	mw2 "github.com/doorward/doorman-go/internal/mw"
	"github.com/doorward/doorman-go/internal/version"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Options struct {
	EnableCORS bool
	DevNoStore bool
	Realm      string
}

type Deps struct {
	Validator basicauth.Validator
}

// BuildRouter assembles the full pipeline: baseline chi middleware, tracing
// and logging, then the basicauth gate in front of the protected routes.
// Health and version stay open. Extra middleware lands after the baseline
// and before the gate.
func BuildRouter(d Deps, opts Options, extra ...func(http.Handler) http.Handler) (http.Handler, error) {
	r := chi.NewRouter()
	if opts.DevNoStore || os.Getenv("DOORMAN_ENV") == "local" || os.Getenv("DOORMAN_ENV") == "dev" {
		r.Use(mw2.NoStore)
	}

	// baseline
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	if opts.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	for _, m := range extra {
		r.Use(m)
	}

	// tracing + logger
	r.Use(mw2.Trace())
	r.Use(mw2.Logger(mw2.LogOpts{
		SkipPaths:     []string{"/healthz", "/version"},
		RedactHeaders: []string{"Authorization"},
	}))

	realm := opts.Realm
	if realm == "" {
		realm = basicauth.DefaultRealm
	}
	gate, err := basicauth.New(
		basicauth.WithValidator(d.Validator),
		basicauth.WithRealm(realm),
	)
	if err != nil {
		return nil, err
	}

	r.Get("/healthz", healthCheckHandler)
	r.Get("/version", handlers.Version)

	r.Group(func(priv chi.Router) {
		priv.Use(gate)
		priv.Get("/party", handlers.Party)
		priv.Get("/whoami", handlers.WhoAmI)
	})

	return r, nil
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": version.Version,
	})
}
