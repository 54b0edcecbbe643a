package works

import (
	"net/http"

	"gallery-app/internal/api/apiutil"
	"gallery-app/internal/auth"
	"gallery-app/internal/repository"
	"gallery-app/pkg/types"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Handler serves artists and artworks.
type Handler struct {
	artists  repository.ArtistRepository
	artworks repository.ArtworkRepository
}

func NewHandler(artists repository.ArtistRepository, artworks repository.ArtworkRepository) *Handler {
	return &Handler{artists: artists, artworks: artworks}
}

// ---------- artists

func (h *Handler) ListArtists(c *gin.Context) {
	list, err := h.artists.List(c.Request.Context())
	if err != nil {
		apiutil.Error(c, err)
		return
	}
	out := make([]types.Artist, len(list))
	for i := range list {
		out[i] = artistDTO(&list[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetArtist(c *gin.Context) {
	a, err := h.artists.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		apiutil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, artistDTO(a))
}

func (h *Handler) CreateArtist(c *gin.Context, id auth.Identity) {
	var req types.ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiutil.BindError(c, err)
		return
	}

	a, err := h.artists.Create(c.Request.Context(), artistInput(req))
	if err != nil {
		apiutil.Error(c, err)
		return
	}
	log.Ctx(c.Request.Context()).Info().Str("admin", id.Username).Str("artist_id", a.ID).Msg("artist created")
	c.JSON(http.StatusCreated, artistDTO(a))
}

func (h *Handler) DeleteArtist(c *gin.Context, id auth.Identity) {
	artistID := c.Param("id")
	if err := h.artists.Delete(c.Request.Context(), artistID); err != nil {
		apiutil.Error(c, err)
		return
	}
	log.Ctx(c.Request.Context()).Info().Str("admin", id.Username).Str("artist_id", artistID).Msg("artist deleted")
	apiutil.OK(c)
}

// ---------- artworks

func (h *Handler) ListArtworks(c *gin.Context) {
	filter, err := artworkFilter(c)
	if err != nil {
		apiutil.Error(c, err)
		return
	}

	list, err := h.artworks.List(c.Request.Context(), filter)
	if err != nil {
		apiutil.Error(c, err)
		return
	}
	out := make([]types.Artwork, len(list))
	for i := range list {
		out[i] = artworkDTO(&list[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetArtwork(c *gin.Context) {
	a, err := h.artworks.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		apiutil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, artworkDTO(a))
}

func (h *Handler) CreateArtwork(c *gin.Context, id auth.Identity) {
	var req types.ArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiutil.BindError(c, err)
		return
	}

	a, err := h.artworks.Create(c.Request.Context(), artworkInput(req))
	if err != nil {
		apiutil.Error(c, err)
		return
	}
	log.Ctx(c.Request.Context()).Info().Str("admin", id.Username).Str("artwork_id", a.ID).Msg("artwork created")
	c.JSON(http.StatusCreated, artworkDTO(a))
}

// UpdateArtwork replaces the artwork with the request body.
func (h *Handler) UpdateArtwork(c *gin.Context, id auth.Identity) {
	var req types.ArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiutil.BindError(c, err)
		return
	}

	a, err := h.artworks.Update(c.Request.Context(), c.Param("id"), artworkInput(req))
	if err != nil {
		apiutil.Error(c, err)
		return
	}
	log.Ctx(c.Request.Context()).Info().Str("admin", id.Username).Str("artwork_id", a.ID).Msg("artwork updated")
	c.JSON(http.StatusOK, artworkDTO(a))
}

func (h *Handler) DeleteArtwork(c *gin.Context, id auth.Identity) {
	artworkID := c.Param("id")
	if err := h.artworks.Delete(c.Request.Context(), artworkID); err != nil {
		apiutil.Error(c, err)
		return
	}
	log.Ctx(c.Request.Context()).Info().Str("admin", id.Username).Str("artwork_id", artworkID).Msg("artwork deleted")
	apiutil.OK(c)
}
