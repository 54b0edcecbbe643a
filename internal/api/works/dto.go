package works

import (
	"strings"

	"gallery-app/internal/domain/works"
	"gallery-app/pkg/types"
)

// ---------- requests

func artistInput(req types.ArtistRequest) works.ArtistInput {
	return works.ArtistInput{
		Name:        strings.TrimSpace(req.Name),
		Bio:         req.Bio,
		Nationality: req.Nationality,
	}
}

func artworkInput(req types.ArtworkRequest) works.ArtworkInput {
	in := works.ArtworkInput{
		Title:       strings.TrimSpace(req.Title),
		ArtistID:    req.ArtistID,
		Category:    works.Category(req.Category),
		Medium:      req.Medium,
		Year:        req.Year,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		IsFeatured:  req.IsFeatured,
		IsAvailable: req.IsAvailable,
	}
	if d := req.Dimensions; d != nil {
		in.Dimensions = works.Dimensions{
			Width:  d.Width,
			Height: d.Height,
			Depth:  d.Depth,
			Unit:   works.Unit(d.Unit),
		}
	}
	return in
}
