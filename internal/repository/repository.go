package repository

import (
	"context"
	"time"

	"gallery-app/internal/domain/events"
	"gallery-app/internal/domain/exhibitions"
	"gallery-app/internal/domain/users"
	"gallery-app/internal/domain/works"

	"gorm.io/gorm"
)

type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*users.Admin, error)
	Create(ctx context.Context, username, passwordHash string) (*users.Admin, error)
}

type ArtistRepository interface {
	List(ctx context.Context) ([]works.Artist, error)
	GetByID(ctx context.Context, id string) (*works.Artist, error)
	Create(ctx context.Context, in works.ArtistInput) (*works.Artist, error)
	Update(ctx context.Context, id string, in works.ArtistInput) (*works.Artist, error)
	Delete(ctx context.Context, id string) error
}

// ArtworkFilter fields are ANDed; nil means "any".
type ArtworkFilter struct {
	Category *works.Category
	Featured *bool
}

type ArtworkRepository interface {
	List(ctx context.Context, f ArtworkFilter) ([]works.Artwork, error)
	GetByID(ctx context.Context, id string) (*works.Artwork, error)
	Create(ctx context.Context, in works.ArtworkInput) (*works.Artwork, error)
	Update(ctx context.Context, id string, in works.ArtworkInput) (*works.Artwork, error)
	Delete(ctx context.Context, id string) error
}

type ExhibitionFilter struct {
	Status   *exhibitions.Status
	Featured *bool
}

type ExhibitionRepository interface {
	List(ctx context.Context, f ExhibitionFilter) ([]exhibitions.Exhibition, error)
	GetByID(ctx context.Context, id string) (*exhibitions.Exhibition, error)
	GetBySlug(ctx context.Context, slug string) (*exhibitions.Exhibition, error)
	Create(ctx context.Context, in exhibitions.ExhibitionInput) (*exhibitions.Exhibition, error)
	Update(ctx context.Context, id string, in exhibitions.ExhibitionInput) (*exhibitions.Exhibition, error)
	Delete(ctx context.Context, id string) error
}

type EventFilter struct {
	Status   *events.Status
	Featured *bool
}

type EventRepository interface {
	List(ctx context.Context, f EventFilter) ([]events.Event, error)
	GetByID(ctx context.Context, id string) (*events.Event, error)
	GetBySlug(ctx context.Context, slug string) (*events.Event, error)
	Create(ctx context.Context, in events.EventInput) (*events.Event, error)
	Update(ctx context.Context, id string, in events.EventInput) (*events.Event, error)
	Delete(ctx context.Context, id string) error
}

type StatsRepository interface {
	Counts(ctx context.Context) (*Counts, error)
}

// Repository bundles the stores built over one database handle.
type Repository struct {
	Admins      *AdminStore
	Artists     *ArtistStore
	Artworks    *ArtworkStore
	Exhibitions *ExhibitionStore
	Events      *EventStore
	Stats       *StatsStore
}

func New(db *gorm.DB) *Repository {
	return &Repository{
		Admins:      NewAdminStore(db),
		Artists:     NewArtistStore(db),
		Artworks:    NewArtworkStore(db),
		Exhibitions: NewExhibitionStore(db),
		Events:      NewEventStore(db),
		Stats:       NewStatsStore(db),
	}
}

// Clock is swapped in tests to pin timestamps.
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
