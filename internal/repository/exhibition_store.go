package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gallery-app/internal/apperr"
	"gallery-app/internal/domain/exhibitions"
	"gallery-app/internal/domain/site"
	"gallery-app/internal/domain/works"

	"gorm.io/gorm"
)

type ExhibitionStore struct {
	db  *gorm.DB
	now Clock
}

func NewExhibitionStore(db *gorm.DB) *ExhibitionStore {
	return &ExhibitionStore{db: db, now: systemClock}
}

func (s *ExhibitionStore) List(ctx context.Context, f ExhibitionFilter) ([]exhibitions.Exhibition, error) {
	q := s.db.WithContext(ctx).Model(&exhibitions.Exhibition{})
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.Featured != nil {
		q = q.Where("is_featured = ?", *f.Featured)
	}

	list := []exhibitions.Exhibition{}
	if err := q.Order("start_date ASC").Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list exhibitions: %w", err)
	}
	if err := s.hydrate(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *ExhibitionStore) GetByID(ctx context.Context, id string) (*exhibitions.Exhibition, error) {
	return s.getOne(ctx, "id = ?", id)
}

func (s *ExhibitionStore) GetBySlug(ctx context.Context, slug string) (*exhibitions.Exhibition, error) {
	return s.getOne(ctx, "slug = ?", slug)
}

func (s *ExhibitionStore) getOne(ctx context.Context, cond string, arg string) (*exhibitions.Exhibition, error) {
	var e exhibitions.Exhibition
	if err := s.db.WithContext(ctx).Where(cond, arg).Take(&e).Error; err != nil {
		return nil, fmt.Errorf("exhibition %s: %w", arg, apperr.FromGorm(err))
	}
	list := []exhibitions.Exhibition{e}
	if err := s.hydrate(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

type exhibitionArtistRow struct {
	ExhibitionID string
	ID           string
	Name         string
	Bio          *string
	Nationality  *string
	CreatedAt    time.Time
}

// hydrate fills Artists for every exhibition in list with one query.
// Artists come back ordered by name.
func (s *ExhibitionStore) hydrate(ctx context.Context, list []exhibitions.Exhibition) error {
	if len(list) == 0 {
		return nil
	}

	ids := make([]string, len(list))
	byID := make(map[string]int, len(list))
	for i := range list {
		ids[i] = list[i].ID
		byID[list[i].ID] = i
		list[i].Artists = []works.Artist{}
	}

	var rows []exhibitionArtistRow
	err := s.db.WithContext(ctx).
		Table("exhibition_artists").
		Select("exhibition_artists.exhibition_id, artists.id, artists.name, artists.bio, artists.nationality, artists.created_at").
		Joins("JOIN artists ON artists.id = exhibition_artists.artist_id").
		Where("exhibition_artists.exhibition_id IN ?", ids).
		Order("artists.name ASC").Order("artists.id ASC").
		Scan(&rows).Error
	if err != nil {
		return fmt.Errorf("load exhibition artists: %w", err)
	}

	for _, r := range rows {
		i := byID[r.ExhibitionID]
		list[i].Artists = append(list[i].Artists, works.Artist{
			ID:          r.ID,
			Name:        r.Name,
			Bio:         r.Bio,
			Nationality: r.Nationality,
			CreatedAt:   r.CreatedAt,
		})
	}
	return nil
}

// Create writes the exhibition and its artist links in one transaction.
func (s *ExhibitionStore) Create(ctx context.Context, in exhibitions.ExhibitionInput) (*exhibitions.Exhibition, error) {
	slug, err := validateExhibition(&in)
	if err != nil {
		return nil, err
	}
	artistIDs := dedupe(in.ArtistIDs)

	now := s.now()
	e := exhibitions.Exhibition{
		Title:       strings.TrimSpace(in.Title),
		Slug:        slug,
		Description: in.Description,
		StartDate:   in.StartDate.UTC(),
		EndDate:     in.EndDate.UTC(),
		Status:      in.Status,
		CoverImage:  in.CoverImage,
		Location:    in.Location,
		IsFeatured:  in.Featured(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireFreeSlug(tx, &exhibitions.Exhibition{}, slug, ""); err != nil {
			return err
		}
		if err := requireArtists(tx, artistIDs); err != nil {
			return err
		}
		if err := tx.Create(&e).Error; err != nil {
			return err
		}
		return replaceArtists(tx, e.ID, artistIDs)
	})
	if err != nil {
		return nil, fmt.Errorf("create exhibition: %w", apperr.FromGorm(err))
	}
	return s.GetByID(ctx, e.ID)
}

// Update fully replaces the exhibition and its artist set. Either every
// write lands or none does.
func (s *ExhibitionStore) Update(ctx context.Context, id string, in exhibitions.ExhibitionInput) (*exhibitions.Exhibition, error) {
	slug, err := validateExhibition(&in)
	if err != nil {
		return nil, err
	}
	artistIDs := dedupe(in.ArtistIDs)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &exhibitions.Exhibition{}, id, "exhibition"); err != nil {
			return err
		}
		if err := requireFreeSlug(tx, &exhibitions.Exhibition{}, slug, id); err != nil {
			return err
		}
		if err := requireArtists(tx, artistIDs); err != nil {
			return err
		}

		err := tx.Model(&exhibitions.Exhibition{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":       strings.TrimSpace(in.Title),
			"slug":        slug,
			"description": in.Description,
			"start_date":  in.StartDate.UTC(),
			"end_date":    in.EndDate.UTC(),
			"status":      in.Status,
			"cover_image": in.CoverImage,
			"location":    in.Location,
			"is_featured": in.Featured(),
			"updated_at":  s.now(),
		}).Error
		if err != nil {
			return err
		}
		return replaceArtists(tx, id, artistIDs)
	})
	if err != nil {
		return nil, fmt.Errorf("update exhibition: %w", apperr.FromGorm(err))
	}
	return s.GetByID(ctx, id)
}

func (s *ExhibitionStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("exhibition_id = ?", id).Delete(&exhibitions.ExhibitionArtist{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&exhibitions.Exhibition{})
		if res.Error != nil {
			return apperr.FromGorm(res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("exhibition %s: %w", id, apperr.ErrNotFound)
		}
		return nil
	})
}

// replaceArtists drops every link of the exhibition, then inserts artistIDs.
func replaceArtists(tx *gorm.DB, exhibitionID string, artistIDs []string) error {
	if err := tx.Where("exhibition_id = ?", exhibitionID).Delete(&exhibitions.ExhibitionArtist{}).Error; err != nil {
		return err
	}
	if len(artistIDs) == 0 {
		return nil
	}

	links := make([]exhibitions.ExhibitionArtist, len(artistIDs))
	for i, artistID := range artistIDs {
		links[i] = exhibitions.ExhibitionArtist{ExhibitionID: exhibitionID, ArtistID: artistID}
	}
	return tx.Omit("Exhibition", "Artist").Create(&links).Error
}

// validateExhibition checks required fields and returns the slug to store,
// deriving it from the title when the caller left it empty.
func validateExhibition(in *exhibitions.ExhibitionInput) (string, error) {
	var missing []string
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if in.CoverImage == "" {
		missing = append(missing, "coverImage")
	}
	if in.StartDate.IsZero() {
		missing = append(missing, "startDate")
	}
	if in.EndDate.IsZero() {
		missing = append(missing, "endDate")
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("missing required fields %s: %w", strings.Join(missing, ", "), apperr.ErrValidation)
	}
	if !in.Status.Valid() {
		return "", fmt.Errorf("unknown exhibition status %q: %w", in.Status, apperr.ErrValidation)
	}
	if in.EndDate.Before(in.StartDate) {
		return "", fmt.Errorf("endDate is before startDate: %w", apperr.ErrValidation)
	}
	return resolveSlug(in.Slug, in.Title)
}

func resolveSlug(slug, title string) (string, error) {
	if slug == "" {
		slug = site.MakeSlug(title)
		if slug == "" {
			return "", fmt.Errorf("cannot derive a slug from title %q: %w", title, apperr.ErrValidation)
		}
		return slug, nil
	}
	if !site.ValidSlug(slug) {
		return "", fmt.Errorf("invalid slug %q: %w", slug, apperr.ErrValidation)
	}
	return slug, nil
}
