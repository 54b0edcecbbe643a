package repository

import (
	"context"
	"fmt"
	"strings"

	"gallery-app/internal/apperr"
	"gallery-app/internal/domain/works"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ArtworkStore struct {
	db  *gorm.DB
	now Clock
}

func NewArtworkStore(db *gorm.DB) *ArtworkStore {
	return &ArtworkStore{db: db, now: systemClock}
}

// withArtist embeds the owning artist with an inner join so callers never
// look the artist up separately.
func (s *ArtworkStore) withArtist(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Model(&works.Artwork{}).InnerJoins("Artist")
}

func (s *ArtworkStore) List(ctx context.Context, f ArtworkFilter) ([]works.Artwork, error) {
	q := s.withArtist(ctx)
	if f.Category != nil {
		q = q.Where("artworks.category = ?", *f.Category)
	}
	if f.Featured != nil {
		q = q.Where("artworks.is_featured = ?", *f.Featured)
	}

	artworks := []works.Artwork{}
	if err := q.Order("artworks.created_at ASC").Order("artworks.id ASC").Find(&artworks).Error; err != nil {
		return nil, fmt.Errorf("list artworks: %w", err)
	}
	return artworks, nil
}

func (s *ArtworkStore) GetByID(ctx context.Context, id string) (*works.Artwork, error) {
	var a works.Artwork
	if err := s.withArtist(ctx).Where("artworks.id = ?", id).Take(&a).Error; err != nil {
		return nil, fmt.Errorf("artwork %s: %w", id, apperr.FromGorm(err))
	}
	return &a, nil
}

func (s *ArtworkStore) Create(ctx context.Context, in works.ArtworkInput) (*works.Artwork, error) {
	if err := validateArtwork(in); err != nil {
		return nil, err
	}

	now := s.now()
	a := works.Artwork{
		Title:       strings.TrimSpace(in.Title),
		ArtistID:    in.ArtistID,
		Category:    in.Category,
		Medium:      in.Medium,
		Dimensions:  datatypes.NewJSONType(in.Dimensions),
		Year:        in.Year,
		ImageURL:    in.ImageURL,
		Description: in.Description,
		IsFeatured:  in.Featured(),
		IsAvailable: in.Available(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireArtists(tx, []string{in.ArtistID}); err != nil {
			return err
		}
		return tx.Omit("Artist").Create(&a).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create artwork: %w", apperr.FromGorm(err))
	}
	return s.GetByID(ctx, a.ID)
}

// Update replaces every writable field; fields the caller leaves out are
// cleared or reset to their defaults.
func (s *ArtworkStore) Update(ctx context.Context, id string, in works.ArtworkInput) (*works.Artwork, error) {
	if err := validateArtwork(in); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &works.Artwork{}, id, "artwork"); err != nil {
			return err
		}
		if err := requireArtists(tx, []string{in.ArtistID}); err != nil {
			return err
		}
		return tx.Model(&works.Artwork{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":        strings.TrimSpace(in.Title),
			"artist_id":    in.ArtistID,
			"category":     in.Category,
			"medium":       in.Medium,
			"dimensions":   datatypes.NewJSONType(in.Dimensions),
			"year":         in.Year,
			"image_url":    in.ImageURL,
			"description":  in.Description,
			"is_featured":  in.Featured(),
			"is_available": in.Available(),
			"updated_at":   s.now(),
		}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("update artwork: %w", apperr.FromGorm(err))
	}
	return s.GetByID(ctx, id)
}

func (s *ArtworkStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&works.Artwork{})
	if res.Error != nil {
		return fmt.Errorf("delete artwork %s: %w", id, apperr.FromGorm(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("artwork %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func validateArtwork(in works.ArtworkInput) error {
	var missing []string
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if in.ArtistID == "" {
		missing = append(missing, "artistId")
	}
	if in.Medium == "" {
		missing = append(missing, "medium")
	}
	if in.ImageURL == "" {
		missing = append(missing, "imageUrl")
	}
	if in.Year == 0 {
		missing = append(missing, "year")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields %s: %w", strings.Join(missing, ", "), apperr.ErrValidation)
	}
	if !in.Category.Valid() {
		return fmt.Errorf("unknown category %q: %w", in.Category, apperr.ErrValidation)
	}

	d := in.Dimensions
	if d.Width <= 0 || d.Height <= 0 || (d.Depth != nil && *d.Depth <= 0) {
		return fmt.Errorf("dimensions must be positive: %w", apperr.ErrValidation)
	}
	switch d.Unit {
	case works.UnitCM, works.UnitM, works.UnitMM:
	default:
		return fmt.Errorf("unknown dimension unit %q: %w", d.Unit, apperr.ErrValidation)
	}
	return nil
}
