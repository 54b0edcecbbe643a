package repository

import (
	"context"
	"testing"
	"time"

	"gallery-app/internal/apperr"
	"gallery-app/internal/domain/exhibitions"
	"gallery-app/internal/domain/works"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtistStoreListOrderedByName(t *testing.T) {
	repo := newTestRepo(t)
	for _, name := range []string{"Vera Molnar", "Anni Albers", "Lee Krasner"} {
		mustArtist(t, repo, name)
	}

	list, err := repo.Artists.List(context.Background())
	require.NoError(t, err)

	var names []string
	for _, a := range list {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"Anni Albers", "Lee Krasner", "Vera Molnar"}, names)
}

func TestArtistStoreCreateRequiresName(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Artists.Create(context.Background(), works.ArtistInput{Name: "  "})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestArtistStoreUpdate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a, err := repo.Artists.Create(ctx, works.ArtistInput{Name: "Hilma", Bio: ptr("Swedish painter")})
	require.NoError(t, err)

	got, err := repo.Artists.Update(ctx, a.ID, works.ArtistInput{Name: "Hilma af Klint", Nationality: ptr("Swedish")})
	require.NoError(t, err)

	assert.Equal(t, "Hilma af Klint", got.Name)
	assert.Nil(t, got.Bio, "omitted bio is cleared")
	require.NotNil(t, got.Nationality)
	assert.Equal(t, "Swedish", *got.Nationality)
	assert.WithinDuration(t, a.CreatedAt, got.CreatedAt, time.Millisecond)
}

func TestArtistStoreUpdateMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Artists.Update(context.Background(), "missing", works.ArtistInput{Name: "x"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	list, err := repo.Artists.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestArtistStoreDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := mustArtist(t, repo, "Sonia Delaunay")

	require.NoError(t, repo.Artists.Delete(ctx, a.ID))

	_, err := repo.Artists.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, repo.Artists.Delete(ctx, a.ID), apperr.ErrNotFound)
}

func TestArtistStoreDeleteReferencedByArtwork(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := mustArtist(t, repo, "Agnes Martin")
	_, err := repo.Artworks.Create(ctx, artworkInput(a.ID, "grid", works.CategoryPaintings, false))
	require.NoError(t, err)

	err = repo.Artists.Delete(ctx, a.ID)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	_, err = repo.Artists.GetByID(ctx, a.ID)
	assert.NoError(t, err)
}

func TestArtistStoreDeleteDropsExhibitionLinks(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := mustArtist(t, repo, "Bridget Riley")
	b := mustArtist(t, repo, "Carmen Herrera")
	ex, err := repo.Exhibitions.Create(ctx, exhibitionInput("Op and Line", a.ID, b.ID))
	require.NoError(t, err)
	require.Len(t, ex.Artists, 2)

	require.NoError(t, repo.Artists.Delete(ctx, a.ID))

	got, err := repo.Exhibitions.GetByID(ctx, ex.ID)
	require.NoError(t, err)
	require.Len(t, got.Artists, 1)
	assert.Equal(t, b.ID, got.Artists[0].ID)

	var links int64
	require.NoError(t, repo.Artists.db.Model(&exhibitions.ExhibitionArtist{}).Where("artist_id = ?", a.ID).Count(&links).Error)
	assert.Zero(t, links)
}
