package events

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

var Statuses = []Status{StatusUpcoming, StatusOngoing, StatusCompleted}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

type Event struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"not null;uniqueIndex" json:"slug"`
	Description string    `gorm:"not null" json:"description"`
	StartDate   time.Time `gorm:"not null;index" json:"startDate"`
	// A nil EndDate means the event is open-ended.
	EndDate    *time.Time `json:"endDate,omitempty"`
	Status     Status     `gorm:"type:text;not null;index" json:"status"`
	CoverImage *string    `json:"coverImage,omitempty"`
	Location   *string    `json:"location,omitempty"`
	IsFeatured bool       `gorm:"not null;index" json:"isFeatured"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

type EventInput struct {
	Title       string
	Slug        string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	Status      Status
	CoverImage  *string
	Location    *string
	IsFeatured  *bool
}

func (in EventInput) Featured() bool {
	return in.IsFeatured != nil && *in.IsFeatured
}
