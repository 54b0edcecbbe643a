package site

import (
	"gallery-app/internal/domain/site"
	"gallery-app/pkg/types"
)

func galleryDTO(g site.GalleryInfo) types.Gallery {
	return types.Gallery{
		Name:         g.Name,
		Description:  g.Description,
		Address:      g.Address,
		City:         g.City,
		PostalCode:   g.PostalCode,
		Country:      g.Country,
		Phone:        g.Phone,
		Email:        g.Email,
		WorkingHours: g.WorkingHours,
	}
}
