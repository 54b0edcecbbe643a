package cli

import (
	"context"
	"testing"

	"gallery-app/database/dbtest"
	"gallery-app/internal/apperr"
	"gallery-app/internal/auth"
	"gallery-app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAdmin(t *testing.T) {
	store := repository.NewAdminStore(dbtest.Open(t))
	ctx := context.Background()

	require.NoError(t, createAdmin(ctx, store, "curator", "s3cret"))

	_, err := auth.NewService(store, "k").Authenticate(ctx, "curator", "s3cret")
	assert.NoError(t, err)

	err = createAdmin(ctx, store, "curator", "other")
	assert.ErrorIs(t, err, apperr.ErrConflict)

	err = createAdmin(ctx, store, "empty", "")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestEnsureAdminKeepsExistingPassword(t *testing.T) {
	store := repository.NewAdminStore(dbtest.Open(t))
	ctx := context.Background()
	svc := auth.NewService(store, "k")

	require.NoError(t, ensureAdmin(ctx, store, "admin", "first"))
	require.NoError(t, ensureAdmin(ctx, store, "admin", "second"))

	_, err := svc.Authenticate(ctx, "admin", "first")
	assert.NoError(t, err)
	_, err = svc.Authenticate(ctx, "admin", "second")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestEnsureAdminSkipsWhenUnset(t *testing.T) {
	store := repository.NewAdminStore(dbtest.Open(t))

	require.NoError(t, ensureAdmin(context.Background(), store, "", ""))

	_, err := store.GetByUsername(context.Background(), "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
