package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gallery-app/internal/apperr"
	"gallery-app/internal/domain/events"

	"gorm.io/gorm"
)

type EventStore struct {
	db  *gorm.DB
	now Clock
}

func NewEventStore(db *gorm.DB) *EventStore {
	return &EventStore{db: db, now: systemClock}
}

func (s *EventStore) List(ctx context.Context, f EventFilter) ([]events.Event, error) {
	q := s.db.WithContext(ctx).Model(&events.Event{})
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.Featured != nil {
		q = q.Where("is_featured = ?", *f.Featured)
	}

	list := []events.Event{}
	if err := q.Order("start_date ASC").Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return list, nil
}

func (s *EventStore) GetByID(ctx context.Context, id string) (*events.Event, error) {
	var e events.Event
	if err := s.db.WithContext(ctx).Where("id = ?", id).Take(&e).Error; err != nil {
		return nil, fmt.Errorf("event %s: %w", id, apperr.FromGorm(err))
	}
	return &e, nil
}

func (s *EventStore) GetBySlug(ctx context.Context, slug string) (*events.Event, error) {
	var e events.Event
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).Take(&e).Error; err != nil {
		return nil, fmt.Errorf("event %q: %w", slug, apperr.FromGorm(err))
	}
	return &e, nil
}

func (s *EventStore) Create(ctx context.Context, in events.EventInput) (*events.Event, error) {
	slug, err := validateEvent(&in)
	if err != nil {
		return nil, err
	}

	now := s.now()
	e := events.Event{
		Title:       strings.TrimSpace(in.Title),
		Slug:        slug,
		Description: in.Description,
		StartDate:   in.StartDate.UTC(),
		EndDate:     utcPtr(in.EndDate),
		Status:      in.Status,
		CoverImage:  in.CoverImage,
		Location:    in.Location,
		IsFeatured:  in.Featured(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireFreeSlug(tx, &events.Event{}, slug, ""); err != nil {
			return err
		}
		return tx.Create(&e).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create event: %w", apperr.FromGorm(err))
	}
	return s.GetByID(ctx, e.ID)
}

func (s *EventStore) Update(ctx context.Context, id string, in events.EventInput) (*events.Event, error) {
	slug, err := validateEvent(&in)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &events.Event{}, id, "event"); err != nil {
			return err
		}
		if err := requireFreeSlug(tx, &events.Event{}, slug, id); err != nil {
			return err
		}
		return tx.Model(&events.Event{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":       strings.TrimSpace(in.Title),
			"slug":        slug,
			"description": in.Description,
			"start_date":  in.StartDate.UTC(),
			"end_date":    utcPtr(in.EndDate),
			"status":      in.Status,
			"cover_image": in.CoverImage,
			"location":    in.Location,
			"is_featured": in.Featured(),
			"updated_at":  s.now(),
		}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("update event: %w", apperr.FromGorm(err))
	}
	return s.GetByID(ctx, id)
}

func (s *EventStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&events.Event{})
	if res.Error != nil {
		return fmt.Errorf("delete event %s: %w", id, apperr.FromGorm(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("event %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func validateEvent(in *events.EventInput) (string, error) {
	var missing []string
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if in.StartDate.IsZero() {
		missing = append(missing, "startDate")
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("missing required fields %s: %w", strings.Join(missing, ", "), apperr.ErrValidation)
	}
	if !in.Status.Valid() {
		return "", fmt.Errorf("unknown event status %q: %w", in.Status, apperr.ErrValidation)
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return "", fmt.Errorf("endDate is before startDate: %w", apperr.ErrValidation)
	}
	return resolveSlug(in.Slug, in.Title)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
