package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gallery-app/config"
	"gallery-app/database/dbtest"
	routes "gallery-app/internal/app/http"
	"gallery-app/internal/auth"
	"gallery-app/internal/repository"
	"gallery-app/pkg/client"
	"gallery-app/pkg/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) *client.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.New(dbtest.Open(t))
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	_, err = repo.Admins.Create(context.Background(), "curator", hash)
	require.NoError(t, err)

	cfg := &config.Config{
		Env:           "development",
		CORSOrigin:    "http://localhost:3001",
		SessionCookie: "token",
		Gallery:       config.Gallery{Name: "Client Gallery"},
	}
	srv := httptest.NewServer(routes.NewRouter(routes.Deps{
		Config: cfg,
		Repo:   repo,
		Auth:   auth.NewService(repo.Admins, "client-secret"),
	}))
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL + "/")
	require.NoError(t, err)
	return c
}

func ptr[T any](v T) *T { return &v }

func TestClientSession(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	_, err := c.Me(ctx)
	assert.ErrorIs(t, err, client.ErrUnauthorized)

	_, err = c.Login(ctx, "curator", "wrong")
	assert.ErrorIs(t, err, client.ErrInvalidCredentials)
	var apiErr *client.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	id, err := c.Login(ctx, "curator", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "curator", id.Username)

	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, id.ID, me.ID)

	require.NoError(t, c.Logout(ctx))
	_, err = c.Me(ctx)
	assert.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestClientPublicReads(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	require.NoError(t, c.Health(ctx))

	g, err := c.Gallery(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Client Gallery", g.Name)

	artists, err := c.ListArtists(ctx)
	require.NoError(t, err)
	assert.Empty(t, artists)

	_, err = c.GetArtwork(ctx, "missing")
	assert.ErrorIs(t, err, client.ErrNotFound)

	_, err = c.ListArtworks(ctx, client.ArtworkQuery{Category: "ceramics"})
	assert.ErrorIs(t, err, client.ErrValidation)

	_, err = c.CreateArtist(ctx, types.ArtistRequest{Name: "Anonymous"})
	assert.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestClientCatalogue(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()
	_, err := c.Login(ctx, "curator", "s3cret")
	require.NoError(t, err)

	artist, err := c.CreateArtist(ctx, types.ArtistRequest{Name: "Lygia Clark", Nationality: ptr("Brazilian")})
	require.NoError(t, err)

	got, err := c.GetArtist(ctx, artist.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lygia Clark", got.Name)

	aw, err := c.CreateArtwork(ctx, types.ArtworkRequest{
		Title:      "Bicho",
		ArtistID:   artist.ID,
		Category:   "sculpture",
		Medium:     "Aluminium",
		Dimensions: &types.Dimensions{Width: 40, Height: 30, Depth: ptr(25.0), Unit: "cm"},
		Year:       1960,
		ImageURL:   "https://cdn.example.com/bicho.jpg",
		IsFeatured: ptr(true),
	})
	require.NoError(t, err)
	require.NotNil(t, aw.Dimensions.Depth)
	assert.Equal(t, 25.0, *aw.Dimensions.Depth)

	list, err := c.ListArtworks(ctx, client.ArtworkQuery{Category: "sculpture", Featured: ptr(true)})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Lygia Clark", list[0].Artist.Name)

	err = c.DeleteArtist(ctx, artist.ID)
	assert.ErrorIs(t, err, client.ErrConflict)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0)
	ex, err := c.CreateExhibition(ctx, types.ExhibitionRequest{
		Title:       "Neo-Concrete",
		Description: "Participation art.",
		StartDate:   &start,
		EndDate:     &end,
		Status:      "upcoming",
		CoverImage:  "https://cdn.example.com/neo.jpg",
		ArtistIDs:   []string{artist.ID},
	})
	require.NoError(t, err)
	require.Len(t, ex.Artists, 1)

	bySlug, err := c.GetExhibitionBySlug(ctx, "neo-concrete")
	require.NoError(t, err)
	assert.Equal(t, ex.ID, bySlug.ID)

	exs, err := c.ListExhibitions(ctx, client.StatusQuery{Status: "upcoming"})
	require.NoError(t, err)
	assert.Len(t, exs, 1)

	ev, err := c.CreateEvent(ctx, types.EventRequest{
		Title:       "Opening",
		Description: "Opening night.",
		StartDate:   &start,
		Status:      "upcoming",
	})
	require.NoError(t, err)

	evs, err := c.ListEvents(ctx, client.StatusQuery{Featured: ptr(false)})
	require.NoError(t, err)
	require.Len(t, evs, 1)
	assert.Equal(t, ev.ID, evs[0].ID)

	stats, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Artworks)
	assert.Equal(t, int64(1), stats.Exhibitions)

	require.NoError(t, c.DeleteEvent(ctx, ev.ID))
	require.NoError(t, c.DeleteExhibition(ctx, ex.ID))
	require.NoError(t, c.DeleteArtwork(ctx, aw.ID))
	require.NoError(t, c.DeleteArtist(ctx, artist.ID))

	_, err = c.GetEvent(ctx, ev.ID)
	assert.ErrorIs(t, err, client.ErrNotFound)
}

func TestErrorIs(t *testing.T) {
	err := error(&client.Error{StatusCode: http.StatusNotFound, Code: "not_found"})
	assert.ErrorIs(t, err, client.ErrNotFound)
	assert.NotErrorIs(t, err, client.ErrConflict)
	assert.Contains(t, err.Error(), "404")
}
