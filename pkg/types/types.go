// Package types holds the JSON shapes exchanged between the API and its
// clients. Request types carry gin binding rules.
package types

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type Artist struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Bio         *string   `json:"bio,omitempty"`
	Nationality *string   `json:"nationality,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ArtistRequest struct {
	Name        string  `json:"name" binding:"required"`
	Bio         *string `json:"bio"`
	Nationality *string `json:"nationality"`
}

// ArtistSummary is the public part of an artist embedded in an artwork.
type ArtistSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Bio         *string `json:"bio,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
}

type Dimensions struct {
	Width  float64  `json:"width" binding:"required,gt=0"`
	Height float64  `json:"height" binding:"required,gt=0"`
	Depth  *float64 `json:"depth,omitempty" binding:"omitempty,gt=0"`
	Unit   string   `json:"unit" binding:"required,oneof=cm m mm"`
}

type Artwork struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	ArtistID    string         `json:"artistId"`
	Artist      *ArtistSummary `json:"artist,omitempty"`
	Category    string         `json:"category"`
	Medium      string         `json:"medium"`
	Dimensions  Dimensions     `json:"dimensions"`
	Year        int            `json:"year"`
	ImageURL    string         `json:"imageUrl"`
	Description *string        `json:"description,omitempty"`
	IsFeatured  bool           `json:"isFeatured"`
	IsAvailable bool           `json:"isAvailable"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// ArtworkRequest is used for both create and full-replace update.
type ArtworkRequest struct {
	Title       string      `json:"title" binding:"required"`
	ArtistID    string      `json:"artistId" binding:"required"`
	Category    string      `json:"category" binding:"required,oneof=paintings modern-art photography sculpture graphics other"`
	Medium      string      `json:"medium" binding:"required"`
	Dimensions  *Dimensions `json:"dimensions" binding:"required"`
	Year        int         `json:"year" binding:"required"`
	ImageURL    string      `json:"imageUrl" binding:"required"`
	Description *string     `json:"description,omitempty"`
	IsFeatured  *bool       `json:"isFeatured,omitempty"`
	IsAvailable *bool       `json:"isAvailable,omitempty"`
}

type Exhibition struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Status      string    `json:"status"`
	CoverImage  string    `json:"coverImage"`
	Location    *string   `json:"location,omitempty"`
	IsFeatured  bool      `json:"isFeatured"`
	Artists     []Artist  `json:"artists"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ExhibitionRequest replaces the artist set with ArtistIDs on every write.
// An empty Slug is derived from the title.
type ExhibitionRequest struct {
	Title       string     `json:"title" binding:"required"`
	Slug        string     `json:"slug,omitempty" binding:"omitempty,slug"`
	Description string     `json:"description" binding:"required"`
	StartDate   *time.Time `json:"startDate" binding:"required"`
	EndDate     *time.Time `json:"endDate" binding:"required"`
	Status      string     `json:"status" binding:"required,oneof=current upcoming past"`
	CoverImage  string     `json:"coverImage" binding:"required"`
	Location    *string    `json:"location,omitempty"`
	IsFeatured  *bool      `json:"isFeatured,omitempty"`
	ArtistIDs   []string   `json:"artistIds" binding:"omitempty,dive,required"`
}

type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Status      string     `json:"status"`
	CoverImage  *string    `json:"coverImage,omitempty"`
	Location    *string    `json:"location,omitempty"`
	IsFeatured  bool       `json:"isFeatured"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type EventRequest struct {
	Title       string     `json:"title" binding:"required"`
	Slug        string     `json:"slug,omitempty" binding:"omitempty,slug"`
	Description string     `json:"description" binding:"required"`
	StartDate   *time.Time `json:"startDate" binding:"required"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Status      string     `json:"status" binding:"required,oneof=upcoming ongoing completed"`
	CoverImage  *string    `json:"coverImage,omitempty"`
	Location    *string    `json:"location,omitempty"`
	IsFeatured  *bool      `json:"isFeatured,omitempty"`
}

type Gallery struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Address      string `json:"address"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	WorkingHours string `json:"workingHours"`
}

type Stats struct {
	Artists           int64 `json:"artists"`
	Artworks          int64 `json:"artworks"`
	FeaturedArtworks  int64 `json:"featuredArtworks"`
	AvailableArtworks int64 `json:"availableArtworks"`
	Exhibitions       int64 `json:"exhibitions"`
	Events            int64 `json:"events"`
}
