package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/doorward/doorman-go/internal/di"
	"github.com/doorward/doorman-go/internal/server"
	"github.com/doorward/doorman-go/internal/users"
	"github.com/spf13/cobra"
)

func cmdServe() *cobra.Command {
	var enableCORS bool
	var devNoStore bool

	c := &cobra.Command{
		Use:   "serve",
		Short: "Start the gate in front of the demo handlers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			setupLogger(cfg.LogJSON)

			store := users.NewStore(cfg.Users)
			h, err := server.BuildRouter(server.Deps{
				Validator: di.ProvideValidator(store),
			}, server.Options{
				EnableCORS: enableCORS,
				DevNoStore: devNoStore,
				Realm:      cfg.Realm,
			})
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           h,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() { errc <- srv.ListenAndServe() }()

			slog.Info("listening", "addr", cfg.Addr, "realm", cfg.Realm, "users", store.Len())

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	}
	c.Flags().BoolVar(&enableCORS, "cors", false, "allow cross-origin browser clients")
	c.Flags().BoolVar(&devNoStore, "dev-no-store", false, "send no-store cache headers")
	return c
}

func setupLogger(jsonOut bool) {
	var h slog.Handler
	if jsonOut {
		h = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		h = slog.NewTextHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(h))
}
