package auth

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"gallery-app/internal/apperr"
	"gallery-app/internal/domain/users"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memStore map[string]*users.Admin

func (m memStore) GetByUsername(_ context.Context, username string) (*users.Admin, error) {
	a, ok := m[username]
	if !ok {
		return nil, fmt.Errorf("admin %q: %w", username, apperr.ErrNotFound)
	}
	return a, nil
}

func newStore(t *testing.T) memStore {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	return memStore{"curator": {ID: "admin-1", Username: "curator", PasswordHash: string(hash)}}
}

func TestAuthenticateAndValidate(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(newStore(t), "key", WithClock(func() time.Time { return now }))

	sess, err := svc.Authenticate(context.Background(), "curator", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, Identity{ID: "admin-1", Username: "curator"}, sess.Identity)
	assert.Equal(t, now.Add(TokenTTL), sess.ExpiresAt)

	id, err := svc.Validate(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.Identity, id)
}

func TestAuthenticateInvalidCredentials(t *testing.T) {
	svc := NewService(newStore(t), "key")

	_, wrongPassword := svc.Authenticate(context.Background(), "curator", "nope")
	_, unknownUser := svc.Authenticate(context.Background(), "ghost", "s3cret")

	assert.ErrorIs(t, wrongPassword, apperr.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, apperr.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error(), "failures must not reveal which part was wrong")
}

func TestValidateExpired(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(newStore(t), "key", WithClock(func() time.Time { return now }))

	sess, err := svc.Authenticate(context.Background(), "curator", "s3cret")
	require.NoError(t, err)

	now = now.Add(TokenTTL - time.Minute)
	_, err = svc.Validate(sess.Token)
	assert.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = svc.Validate(sess.Token)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestValidateRejectsForeignTokens(t *testing.T) {
	svc := NewService(newStore(t), "key")
	sess, err := svc.Authenticate(context.Background(), "curator", "s3cret")
	require.NoError(t, err)

	parts := strings.Split(sess.Token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	otherKey, err := NewService(newStore(t), "other").Authenticate(context.Background(), "curator", "s3cret")
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "admin-1"}).SignedString([]byte("key"))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "admin-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("key"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"tampered":     tampered,
		"other secret": otherKey.Token,
		"no expiry":    noExp,
		"wrong alg":    hs512,
		"garbage":      "not-a-token",
		"empty":        "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Validate(token)
			assert.ErrorIs(t, err, apperr.ErrUnauthorized)
		})
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw")))

	_, err = HashPassword("")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestIdentityContext(t *testing.T) {
	_, ok := IdentityFrom(context.Background())
	assert.False(t, ok)

	ctx := WithIdentity(context.Background(), Identity{ID: "1", Username: "u"})
	id, ok := IdentityFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, "u", id.Username)
}
