// Package auth issues and checks admin session tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gallery-app/internal/apperr"
	"gallery-app/internal/domain/users"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is fixed; sessions are never refreshed.
const TokenTTL = 7 * 24 * time.Hour

// CredentialStore is the read side of the admin store used to log in.
type CredentialStore interface {
	GetByUsername(ctx context.Context, username string) (*users.Admin, error)
}

type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type Session struct {
	Token     string
	Identity  Identity
	ExpiresAt time.Time
}

type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type Service struct {
	store  CredentialStore
	secret []byte
	now    func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store CredentialStore, secret string, opts ...Option) *Service {
	s := &Service{
		store:  store,
		secret: []byte(secret),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Authenticate checks username and password and issues a session token.
// Unknown usernames and wrong passwords fail the same way.
func (s *Service) Authenticate(ctx context.Context, username, password string) (Session, error) {
	admin, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			return Session{}, fmt.Errorf("load admin: %w", err)
		}
		// Spend the same bcrypt time as a real comparison.
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		return Session{}, apperr.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return Session{}, apperr.ErrInvalidCredentials
	}

	id := Identity{ID: admin.ID, Username: admin.Username}
	token, expiresAt, err := s.issue(id)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, Identity: id, ExpiresAt: expiresAt}, nil
}

func (s *Service) issue(id Identity) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(TokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: id.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			// Not checked yet; reserved for a revocation list.
			ID: uuid.NewString(),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Validate verifies signature, algorithm and expiry. It never touches the
// credential store.
func (s *Service) Validate(token string) (Identity, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return Identity{}, fmt.Errorf("invalid or expired token: %w", apperr.ErrUnauthorized)
	}
	if c.Subject == "" {
		return Identity{}, fmt.Errorf("token has no subject: %w", apperr.ErrUnauthorized)
	}
	return Identity{ID: c.Subject, Username: c.Username}, nil
}

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password is required: %w", apperr.ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

var (
	dummyOnce sync.Once
	dummy     []byte
)

func dummyHash() []byte {
	dummyOnce.Do(func() {
		dummy, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	})
	return dummy
}
