package admin

import (
	"net/http"

	"gallery-app/internal/api/apiutil"
	"gallery-app/internal/auth"
	"gallery-app/internal/repository"
	"gallery-app/pkg/types"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	stats repository.StatsRepository
}

func NewHandler(stats repository.StatsRepository) *Handler {
	return &Handler{stats: stats}
}

// Stats serves the dashboard counters.
func (h *Handler) Stats(c *gin.Context, id auth.Identity) {
	counts, err := h.stats.Counts(c.Request.Context())
	if err != nil {
		apiutil.Error(c, err)
		return
	}
	log.Ctx(c.Request.Context()).Debug().Str("admin", id.Username).Msg("dashboard stats")

	c.JSON(http.StatusOK, types.Stats{
		Artists:           counts.Artists,
		Artworks:          counts.Artworks,
		FeaturedArtworks:  counts.FeaturedArtworks,
		AvailableArtworks: counts.AvailableArtworks,
		Exhibitions:       counts.Exhibitions,
		Events:            counts.Events,
	})
}
