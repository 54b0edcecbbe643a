package repository

import (
	"context"
	"fmt"

	"gallery-app/internal/apperr"
	"gallery-app/internal/domain/users"

	"gorm.io/gorm"
)

// AdminStore is the credential store behind the auth service.
type AdminStore struct {
	db  *gorm.DB
	now Clock
}

func NewAdminStore(db *gorm.DB) *AdminStore {
	return &AdminStore{db: db, now: systemClock}
}

// GetByUsername matches the username exactly, including case.
func (s *AdminStore) GetByUsername(ctx context.Context, username string) (*users.Admin, error) {
	var admin users.Admin
	err := s.db.WithContext(ctx).Where("username = ?", username).Take(&admin).Error
	if err != nil {
		return nil, fmt.Errorf("admin %q: %w", username, apperr.FromGorm(err))
	}
	return &admin, nil
}

func (s *AdminStore) Create(ctx context.Context, username, passwordHash string) (*users.Admin, error) {
	if username == "" || passwordHash == "" {
		return nil, fmt.Errorf("username and password hash are required: %w", apperr.ErrValidation)
	}

	admin := users.Admin{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    s.now(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&users.Admin{}).Where("username = ?", username).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("admin %q already exists: %w", username, apperr.ErrConflict)
		}
		return tx.Create(&admin).Error
	})
	if err != nil {
		return nil, apperr.FromGorm(err)
	}
	return &admin, nil
}
