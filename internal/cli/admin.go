package cli

import (
	"context"
	"errors"
	"fmt"

	"gallery-app/database"
	"gallery-app/internal/apperr"
	"gallery-app/internal/auth"
	"gallery-app/internal/domain/users"
	"gallery-app/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin identities",
	}
	cmd.AddCommand(newAdminCreateCmd())
	return cmd
}

func newAdminCreateCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create an admin who can log in to the CMS",
		Example: `  gallery admin create --username curator --password 's3cret'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := createAdmin(cmd.Context(), repository.NewAdminStore(db), username, password); err != nil {
				return err
			}
			cmd.Printf("admin %q created\n", username)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "login name (case-sensitive)")
	cmd.Flags().StringVar(&password, "password", "", "plain-text password, stored as a bcrypt hash")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

type adminStore interface {
	GetByUsername(ctx context.Context, username string) (*users.Admin, error)
	Create(ctx context.Context, username, passwordHash string) (*users.Admin, error)
}

func createAdmin(ctx context.Context, store adminStore, username, password string) error {
	if username == "" {
		return fmt.Errorf("username is required: %w", apperr.ErrValidation)
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := store.Create(ctx, username, hash); err != nil {
		return fmt.Errorf("create admin %q: %w", username, err)
	}
	return nil
}

// ensureAdmin creates the bootstrap admin when it does not exist yet. An
// existing admin keeps its password.
func ensureAdmin(ctx context.Context, store adminStore, username, password string) error {
	if username == "" || password == "" {
		log.Warn().Msg("ADMIN_USERNAME or ADMIN_PASSWORD empty, skipping admin bootstrap")
		return nil
	}

	_, err := store.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, apperr.ErrNotFound):
		return err
	}

	if err := createAdmin(ctx, store, username, password); err != nil {
		return err
	}
	log.Info().Str("admin", username).Msg("bootstrap admin created")
	return nil
}
