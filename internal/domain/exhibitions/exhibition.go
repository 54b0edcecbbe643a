package exhibitions

import (
	"time"

	"gallery-app/internal/domain/works"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is set by an editor and is not derived from the dates.
type Status string

const (
	StatusCurrent  Status = "current"
	StatusUpcoming Status = "upcoming"
	StatusPast     Status = "past"
)

var Statuses = []Status{StatusCurrent, StatusUpcoming, StatusPast}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

type Exhibition struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"not null;uniqueIndex" json:"slug"`
	Description string    `gorm:"not null" json:"description"`
	StartDate   time.Time `gorm:"not null;index" json:"startDate"`
	EndDate     time.Time `gorm:"not null" json:"endDate"`
	Status      Status    `gorm:"type:text;not null;index" json:"status"`
	CoverImage  string    `gorm:"not null" json:"coverImage"`
	Location    *string   `json:"location,omitempty"`
	IsFeatured  bool      `gorm:"not null;index" json:"isFeatured"`

	Artists []works.Artist `gorm:"-" json:"artists"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (e *Exhibition) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// ExhibitionArtist is the join row; rows go away with their exhibition.
type ExhibitionArtist struct {
	ExhibitionID string        `gorm:"primaryKey;size:36"`
	ArtistID     string        `gorm:"primaryKey;size:36;index"`
	Exhibition   *Exhibition   `gorm:"constraint:OnDelete:CASCADE;"`
	Artist       *works.Artist `gorm:"constraint:OnDelete:CASCADE;"`
}

type ExhibitionInput struct {
	Title       string
	Slug        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Status      Status
	CoverImage  string
	Location    *string
	IsFeatured  *bool
	ArtistIDs   []string
}

func (in ExhibitionInput) Featured() bool {
	return in.IsFeatured != nil && *in.IsFeatured
}
