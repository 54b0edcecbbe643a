package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"gallery-app/pkg/types"
)

// ---------- auth

func (c *Client) Login(ctx context.Context, username, password string) (*types.Identity, error) {
	var out types.Identity
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, types.LoginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
}

func (c *Client) Me(ctx context.Context) (*types.Identity, error) {
	var out types.Identity
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---------- site

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, nil)
}

func (c *Client) Gallery(ctx context.Context) (*types.Gallery, error) {
	var out types.Gallery
	if err := c.do(ctx, http.MethodGet, "/api/gallery", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Stats(ctx context.Context) (*types.Stats, error) {
	var out types.Stats
	if err := c.do(ctx, http.MethodGet, "/api/admin/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---------- artists

func (c *Client) ListArtists(ctx context.Context) ([]types.Artist, error) {
	var out []types.Artist
	if err := c.do(ctx, http.MethodGet, "/api/artists", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetArtist(ctx context.Context, id string) (*types.Artist, error) {
	var out types.Artist
	if err := c.do(ctx, http.MethodGet, "/api/artists/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateArtist(ctx context.Context, req types.ArtistRequest) (*types.Artist, error) {
	var out types.Artist
	if err := c.do(ctx, http.MethodPost, "/api/artists", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteArtist(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/artists/"+url.PathEscape(id), nil, nil, nil)
}

// ---------- artworks

// ArtworkQuery narrows ListArtworks; zero values mean no filter.
type ArtworkQuery struct {
	Category string
	Featured *bool
}

func (q ArtworkQuery) values() url.Values {
	v := url.Values{}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Featured != nil {
		v.Set("featured", strconv.FormatBool(*q.Featured))
	}
	return v
}

func (c *Client) ListArtworks(ctx context.Context, q ArtworkQuery) ([]types.Artwork, error) {
	var out []types.Artwork
	if err := c.do(ctx, http.MethodGet, "/api/artworks", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetArtwork(ctx context.Context, id string) (*types.Artwork, error) {
	var out types.Artwork
	if err := c.do(ctx, http.MethodGet, "/api/artworks/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateArtwork(ctx context.Context, req types.ArtworkRequest) (*types.Artwork, error) {
	var out types.Artwork
	if err := c.do(ctx, http.MethodPost, "/api/artworks", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateArtwork(ctx context.Context, id string, req types.ArtworkRequest) (*types.Artwork, error) {
	var out types.Artwork
	if err := c.do(ctx, http.MethodPut, "/api/artworks/"+url.PathEscape(id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteArtwork(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/artworks/"+url.PathEscape(id), nil, nil, nil)
}

// ---------- exhibitions

// StatusQuery narrows exhibition and event lists.
type StatusQuery struct {
	Status   string
	Featured *bool
}

func (q StatusQuery) values() url.Values {
	v := url.Values{}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Featured != nil {
		v.Set("featured", strconv.FormatBool(*q.Featured))
	}
	return v
}

func (c *Client) ListExhibitions(ctx context.Context, q StatusQuery) ([]types.Exhibition, error) {
	var out []types.Exhibition
	if err := c.do(ctx, http.MethodGet, "/api/exhibitions", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetExhibition(ctx context.Context, id string) (*types.Exhibition, error) {
	var out types.Exhibition
	if err := c.do(ctx, http.MethodGet, "/api/exhibitions/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetExhibitionBySlug(ctx context.Context, slug string) (*types.Exhibition, error) {
	var out types.Exhibition
	if err := c.do(ctx, http.MethodGet, "/api/exhibitions/slug/"+url.PathEscape(slug), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateExhibition(ctx context.Context, req types.ExhibitionRequest) (*types.Exhibition, error) {
	var out types.Exhibition
	if err := c.do(ctx, http.MethodPost, "/api/exhibitions", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateExhibition(ctx context.Context, id string, req types.ExhibitionRequest) (*types.Exhibition, error) {
	var out types.Exhibition
	if err := c.do(ctx, http.MethodPut, "/api/exhibitions/"+url.PathEscape(id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteExhibition(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/exhibitions/"+url.PathEscape(id), nil, nil, nil)
}

// ---------- events

func (c *Client) ListEvents(ctx context.Context, q StatusQuery) ([]types.Event, error) {
	var out []types.Event
	if err := c.do(ctx, http.MethodGet, "/api/events", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (*types.Event, error) {
	var out types.Event
	if err := c.do(ctx, http.MethodGet, "/api/events/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetEventBySlug(ctx context.Context, slug string) (*types.Event, error) {
	var out types.Event
	if err := c.do(ctx, http.MethodGet, "/api/events/slug/"+url.PathEscape(slug), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateEvent(ctx context.Context, req types.EventRequest) (*types.Event, error) {
	var out types.Event
	if err := c.do(ctx, http.MethodPost, "/api/events", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id string, req types.EventRequest) (*types.Event, error) {
	var out types.Event
	if err := c.do(ctx, http.MethodPut, "/api/events/"+url.PathEscape(id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/events/"+url.PathEscape(id), nil, nil, nil)
}
