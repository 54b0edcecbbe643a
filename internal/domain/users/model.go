package users

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin is an administrator identity. Only the auth service reads it.
type Admin struct {
	ID           string `gorm:"primaryKey;size:36"`
	Username     string `gorm:"not null;uniqueIndex:idx_admin_users_username"`
	PasswordHash string `gorm:"column:password_hash;not null"`

	CreatedAt time.Time `gorm:"not null"`
}

func (Admin) TableName() string {
	return "admin_users"
}

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
