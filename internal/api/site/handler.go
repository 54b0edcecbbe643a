package site

import (
	"net/http"

	"gallery-app/internal/domain/site"
	"gallery-app/pkg/types"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	gallery site.GalleryInfo
}

func NewHandler(gallery site.GalleryInfo) *Handler {
	return &Handler{gallery: gallery}
}

// Gallery serves the static gallery record.
func (h *Handler) Gallery(c *gin.Context) {
	c.JSON(http.StatusOK, galleryDTO(h.gallery))
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{Status: "ok"})
}
