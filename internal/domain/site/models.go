package site

// GalleryInfo is the static descriptive record served at /api/gallery.
// It comes from configuration and is never persisted.
type GalleryInfo struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Address      string `json:"address"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	WorkingHours string `json:"workingHours"`
}
