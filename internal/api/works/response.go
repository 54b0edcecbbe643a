package works

import (
	"gallery-app/internal/domain/works"
	"gallery-app/pkg/types"
)

func artistDTO(a *works.Artist) types.Artist {
	return types.Artist{
		ID:          a.ID,
		Name:        a.Name,
		Bio:         a.Bio,
		Nationality: a.Nationality,
		CreatedAt:   a.CreatedAt,
	}
}

func artworkDTO(a *works.Artwork) types.Artwork {
	d := a.Dimensions.Data()
	out := types.Artwork{
		ID:       a.ID,
		Title:    a.Title,
		ArtistID: a.ArtistID,
		Category: string(a.Category),
		Medium:   a.Medium,
		Dimensions: types.Dimensions{
			Width:  d.Width,
			Height: d.Height,
			Depth:  d.Depth,
			Unit:   string(d.Unit),
		},
		Year:        a.Year,
		ImageURL:    a.ImageURL,
		Description: a.Description,
		IsFeatured:  a.IsFeatured,
		IsAvailable: a.IsAvailable,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.Artist != nil {
		out.Artist = &types.ArtistSummary{
			ID:          a.Artist.ID,
			Name:        a.Artist.Name,
			Bio:         a.Artist.Bio,
			Nationality: a.Artist.Nationality,
		}
	}
	return out
}
