package works

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Artist struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	Name        string  `gorm:"not null;index" json:"name"`
	Bio         *string `json:"bio,omitempty"`
	Nationality *string `json:"nationality,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type ArtistInput struct {
	Name        string
	Bio         *string
	Nationality *string
}
