package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gallery-app/database"
	routes "gallery-app/internal/app/http"
	"gallery-app/internal/auth"
	"gallery-app/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer database.Close(db)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			repo := repository.New(db)
			if err := ensureAdmin(ctx, repo.Admins, cfg.AdminUsername, cfg.AdminPassword); err != nil {
				return err
			}

			srv := &http.Server{
				Addr: ":" + cfg.Port,
				Handler: routes.NewRouter(routes.Deps{
					Config: cfg,
					Repo:   repo,
					Auth:   auth.NewService(repo.Admins, cfg.JWTSecret),
				}),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("listening")
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
