package exhibitions

import (
	"net/http"
	"strings"

	"gallery-app/internal/api/apiutil"
	"gallery-app/internal/auth"
	"gallery-app/internal/domain/exhibitions"
	"gallery-app/internal/domain/works"
	"gallery-app/internal/repository"
	"gallery-app/pkg/types"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	repo repository.ExhibitionRepository
}

func NewHandler(repo repository.ExhibitionRepository) *Handler {
	return &Handler{repo: repo}
}

// List serves GET /exhibitions?status=&featured=.
func (h *Handler) List(c *gin.Context) {
	status, err := apiutil.EnumQuery(c, "status", exhibitions.Statuses)
	if err != nil {
		apiutil.Error(c, err)
		return
	}
	featured, err := apiutil.BoolQuery(c, "featured")
	if err != nil {
		apiutil.Error(c, err)
		return
	}

	list, err := h.repo.List(c.Request.Context(), repository.ExhibitionFilter{Status: status, Featured: featured})
	if err != nil {
		apiutil.Error(c, err)
		return
	}
	out := make([]types.Exhibition, len(list))
	for i := range list {
		out[i] = toDTO(&list[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Get(c *gin.Context) {
	e, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		apiutil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toDTO(e))
}

func (h *Handler) GetBySlug(c *gin.Context) {
	e, err := h.repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		apiutil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toDTO(e))
}

func (h *Handler) Create(c *gin.Context, id auth.Identity) {
	var req types.ExhibitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiutil.BindError(c, err)
		return
	}

	e, err := h.repo.Create(c.Request.Context(), toInput(req))
	if err != nil {
		apiutil.Error(c, err)
		return
	}
	log.Ctx(c.Request.Context()).Info().
		Str("admin", id.Username).
		Str("exhibition_id", e.ID).
		Int("artists", len(e.Artists)).
		Msg("exhibition created")
	c.JSON(http.StatusCreated, toDTO(e))
}

// Update replaces the exhibition and its artist list.
func (h *Handler) Update(c *gin.Context, id auth.Identity) {
	var req types.ExhibitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiutil.BindError(c, err)
		return
	}

	e, err := h.repo.Update(c.Request.Context(), c.Param("id"), toInput(req))
	if err != nil {
		apiutil.Error(c, err)
		return
	}
	log.Ctx(c.Request.Context()).Info().
		Str("admin", id.Username).
		Str("exhibition_id", e.ID).
		Int("artists", len(e.Artists)).
		Msg("exhibition updated")
	c.JSON(http.StatusOK, toDTO(e))
}

func (h *Handler) Delete(c *gin.Context, id auth.Identity) {
	exhibitionID := c.Param("id")
	if err := h.repo.Delete(c.Request.Context(), exhibitionID); err != nil {
		apiutil.Error(c, err)
		return
	}
	log.Ctx(c.Request.Context()).Info().Str("admin", id.Username).Str("exhibition_id", exhibitionID).Msg("exhibition deleted")
	apiutil.OK(c)
}

func toInput(req types.ExhibitionRequest) exhibitions.ExhibitionInput {
	in := exhibitions.ExhibitionInput{
		Title:       strings.TrimSpace(req.Title),
		Slug:        req.Slug,
		Description: req.Description,
		Status:      exhibitions.Status(req.Status),
		CoverImage:  req.CoverImage,
		Location:    req.Location,
		IsFeatured:  req.IsFeatured,
		ArtistIDs:   req.ArtistIDs,
	}
	if req.StartDate != nil {
		in.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		in.EndDate = *req.EndDate
	}
	return in
}

func toDTO(e *exhibitions.Exhibition) types.Exhibition {
	return types.Exhibition{
		ID:          e.ID,
		Title:       e.Title,
		Slug:        e.Slug,
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Status:      string(e.Status),
		CoverImage:  e.CoverImage,
		Location:    e.Location,
		IsFeatured:  e.IsFeatured,
		Artists:     artistDTOs(e.Artists),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func artistDTOs(list []works.Artist) []types.Artist {
	out := make([]types.Artist, len(list))
	for i, a := range list {
		out[i] = types.Artist{
			ID:          a.ID,
			Name:        a.Name,
			Bio:         a.Bio,
			Nationality: a.Nationality,
			CreatedAt:   a.CreatedAt,
		}
	}
	return out
}
