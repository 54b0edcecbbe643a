package repository

import (
	"context"
	"testing"
	"time"

	"gallery-app/database/dbtest"
	"gallery-app/internal/domain/works"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// fixedClock returns a clock that advances one second per call.
func fixedClock(start time.Time) Clock {
	t := start
	return func() time.Time {
		now := t
		t = t.Add(time.Second)
		return now
	}
}

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo := New(dbtest.Open(t))

	clock := fixedClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	repo.Admins.now = clock
	repo.Artists.now = clock
	repo.Artworks.now = clock
	repo.Exhibitions.now = clock
	repo.Events.now = clock
	return repo
}

func mustArtist(t *testing.T, repo *Repository, name string) *works.Artist {
	t.Helper()
	a, err := repo.Artists.Create(context.Background(), works.ArtistInput{Name: name})
	require.NoError(t, err)
	return a
}

func artworkInput(artistID, title string, category works.Category, featured bool) works.ArtworkInput {
	return works.ArtworkInput{
		Title:      title,
		ArtistID:   artistID,
		Category:   category,
		Medium:     "Oil on canvas",
		Dimensions: works.Dimensions{Width: 60, Height: 80, Unit: works.UnitCM},
		Year:       2021,
		ImageURL:   "https://cdn.example.com/" + title + ".jpg",
		IsFeatured: ptr(featured),
	}
}
