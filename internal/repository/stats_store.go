package repository

import (
	"context"
	"fmt"

	"gallery-app/internal/domain/events"
	"gallery-app/internal/domain/exhibitions"
	"gallery-app/internal/domain/works"

	"gorm.io/gorm"
)

// Counts backs the admin dashboard.
type Counts struct {
	Artists           int64 `json:"artists"`
	Artworks          int64 `json:"artworks"`
	FeaturedArtworks  int64 `json:"featuredArtworks"`
	AvailableArtworks int64 `json:"availableArtworks"`
	Exhibitions       int64 `json:"exhibitions"`
	Events            int64 `json:"events"`
}

type StatsStore struct {
	db *gorm.DB
}

func NewStatsStore(db *gorm.DB) *StatsStore {
	return &StatsStore{db: db}
}

func (s *StatsStore) Counts(ctx context.Context) (*Counts, error) {
	db := s.db.WithContext(ctx)
	var c Counts

	queries := []struct {
		name string
		q    *gorm.DB
		dst  *int64
	}{
		{"artists", db.Model(&works.Artist{}), &c.Artists},
		{"artworks", db.Model(&works.Artwork{}), &c.Artworks},
		{"featured artworks", db.Model(&works.Artwork{}).Where("is_featured = ?", true), &c.FeaturedArtworks},
		{"available artworks", db.Model(&works.Artwork{}).Where("is_available = ?", true), &c.AvailableArtworks},
		{"exhibitions", db.Model(&exhibitions.Exhibition{}), &c.Exhibitions},
		{"events", db.Model(&events.Event{}), &c.Events},
	}
	for _, q := range queries {
		if err := q.q.Count(q.dst).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", q.name, err)
		}
	}
	return &c, nil
}
