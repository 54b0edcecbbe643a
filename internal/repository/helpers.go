package repository

import (
	"fmt"

	"gallery-app/internal/apperr"
	"gallery-app/internal/domain/works"

	"gorm.io/gorm"
)

// requireRow fails with ErrNotFound when no row of model has the given id.
func requireRow(tx *gorm.DB, model interface{}, id, name string) error {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", name, id, apperr.ErrNotFound)
	}
	return nil
}

// requireArtists fails with ErrValidation unless every id names an artist.
// ids must already be free of duplicates.
func requireArtists(tx *gorm.DB, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	var n int64
	if err := tx.Model(&works.Artist{}).Where("id IN ?", ids).Count(&n).Error; err != nil {
		return err
	}
	if int(n) != len(ids) {
		return fmt.Errorf("unknown artist id in %v: %w", ids, apperr.ErrValidation)
	}
	return nil
}

// requireFreeSlug fails with ErrConflict when another row of model owns slug.
func requireFreeSlug(tx *gorm.DB, model interface{}, slug, exceptID string) error {
	q := tx.Model(model).Where("slug = ?", slug)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("slug %q is already taken: %w", slug, apperr.ErrConflict)
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
