package works

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Category string

const (
	CategoryPaintings   Category = "paintings"
	CategoryModernArt   Category = "modern-art"
	CategoryPhotography Category = "photography"
	CategorySculpture   Category = "sculpture"
	CategoryGraphics    Category = "graphics"
	CategoryOther       Category = "other"
)

var Categories = []Category{
	CategoryPaintings,
	CategoryModernArt,
	CategoryPhotography,
	CategorySculpture,
	CategoryGraphics,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

type Unit string

const (
	UnitCM Unit = "cm"
	UnitM  Unit = "m"
	UnitMM Unit = "mm"
)

// Dimensions is stored as a JSON document; Depth is omitted, not null, when absent.
type Dimensions struct {
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	Depth  *float64 `json:"depth,omitempty"`
	Unit   Unit     `json:"unit"`
}

type Artwork struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Title    string  `gorm:"not null" json:"title"`
	ArtistID string  `gorm:"size:36;not null;index" json:"artistId"`
	Artist   *Artist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"artist,omitempty"`

	Category    Category                       `gorm:"type:text;not null;index" json:"category"`
	Medium      string                         `gorm:"not null" json:"medium"`
	Dimensions  datatypes.JSONType[Dimensions] `gorm:"not null" json:"dimensions"`
	Year        int                            `gorm:"not null" json:"year"`
	ImageURL    string                         `gorm:"column:image_url;not null" json:"imageUrl"`
	Description *string                        `json:"description,omitempty"`

	IsFeatured  bool `gorm:"not null;index" json:"isFeatured"`
	IsAvailable bool `gorm:"not null" json:"isAvailable"`

	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (a *Artwork) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// ArtworkInput carries every writable field. Nil flags take the defaults
// (IsFeatured=false, IsAvailable=true) on both create and update.
type ArtworkInput struct {
	Title       string
	ArtistID    string
	Category    Category
	Medium      string
	Dimensions  Dimensions
	Year        int
	ImageURL    string
	Description *string
	IsFeatured  *bool
	IsAvailable *bool
}

func (in ArtworkInput) Featured() bool {
	return in.IsFeatured != nil && *in.IsFeatured
}

func (in ArtworkInput) Available() bool {
	return in.IsAvailable == nil || *in.IsAvailable
}
