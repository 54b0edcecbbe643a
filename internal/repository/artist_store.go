package repository

import (
	"context"
	"fmt"
	"strings"

	"gallery-app/internal/apperr"
	"gallery-app/internal/domain/exhibitions"
	"gallery-app/internal/domain/works"

	"gorm.io/gorm"
)

type ArtistStore struct {
	db  *gorm.DB
	now Clock
}

func NewArtistStore(db *gorm.DB) *ArtistStore {
	return &ArtistStore{db: db, now: systemClock}
}

func (s *ArtistStore) List(ctx context.Context) ([]works.Artist, error) {
	artists := []works.Artist{}
	if err := s.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return artists, nil
}

func (s *ArtistStore) GetByID(ctx context.Context, id string) (*works.Artist, error) {
	var a works.Artist
	if err := s.db.WithContext(ctx).Where("id = ?", id).Take(&a).Error; err != nil {
		return nil, fmt.Errorf("artist %s: %w", id, apperr.FromGorm(err))
	}
	return &a, nil
}

func (s *ArtistStore) Create(ctx context.Context, in works.ArtistInput) (*works.Artist, error) {
	if err := validateArtist(in); err != nil {
		return nil, err
	}

	a := works.Artist{
		Name:        strings.TrimSpace(in.Name),
		Bio:         in.Bio,
		Nationality: in.Nationality,
		CreatedAt:   s.now(),
	}
	if err := s.db.WithContext(ctx).Create(&a).Error; err != nil {
		return nil, fmt.Errorf("create artist: %w", apperr.FromGorm(err))
	}
	return &a, nil
}

// Update replaces name, bio and nationality. CreatedAt never changes.
func (s *ArtistStore) Update(ctx context.Context, id string, in works.ArtistInput) (*works.Artist, error) {
	if err := validateArtist(in); err != nil {
		return nil, err
	}

	res := s.db.WithContext(ctx).Model(&works.Artist{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        strings.TrimSpace(in.Name),
		"bio":         in.Bio,
		"nationality": in.Nationality,
	})
	if res.Error != nil {
		return nil, fmt.Errorf("update artist %s: %w", id, apperr.FromGorm(res.Error))
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("artist %s: %w", id, apperr.ErrNotFound)
	}
	return s.GetByID(ctx, id)
}

// Delete refuses to remove an artist that still owns artworks. Exhibition
// associations of the artist are removed with it.
func (s *ArtistStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&works.Artwork{}).Where("artist_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("artist %s is referenced by %d artworks: %w", id, n, apperr.ErrConflict)
		}

		if err := tx.Where("artist_id = ?", id).Delete(&exhibitions.ExhibitionArtist{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&works.Artist{})
		if res.Error != nil {
			return apperr.FromGorm(res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("artist %s: %w", id, apperr.ErrNotFound)
		}
		return nil
	})
}

func validateArtist(in works.ArtistInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("name is required: %w", apperr.ErrValidation)
	}
	return nil
}
