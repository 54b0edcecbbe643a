package events

import (
	"net/http"
	"strings"

	"gallery-app/internal/api/apiutil"
	"gallery-app/internal/auth"
	"gallery-app/internal/domain/events"
	"gallery-app/internal/repository"
	"gallery-app/pkg/types"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	repo repository.EventRepository
}

func NewHandler(repo repository.EventRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) List(c *gin.Context) {
	status, err := apiutil.EnumQuery(c, "status", events.Statuses)
	if err != nil {
		apiutil.Error(c, err)
		return
	}
	featured, err := apiutil.BoolQuery(c, "featured")
	if err != nil {
		apiutil.Error(c, err)
		return
	}

	list, err := h.repo.List(c.Request.Context(), repository.EventFilter{Status: status, Featured: featured})
	if err != nil {
		apiutil.Error(c, err)
		return
	}
	out := make([]types.Event, len(list))
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
	var req types.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiutil.BindError(c, err)
		return
	}

	e, err := h.repo.Create(c.Request.Context(), toInput(req))
	if err != nil {
		apiutil.Error(c, err)
		return
	}
	log.Ctx(c.Request.Context()).Info().Str("admin", id.Username).Str("event_id", e.ID).Msg("event created")
	c.JSON(http.StatusCreated, toDTO(e))
}

func (h *Handler) Update(c *gin.Context, id auth.Identity) {
	var req types.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiutil.BindError(c, err)
		return
	}

	e, err := h.repo.Update(c.Request.Context(), c.Param("id"), toInput(req))
	if err != nil {
		apiutil.Error(c, err)
		return
	}
	log.Ctx(c.Request.Context()).Info().Str("admin", id.Username).Str("event_id", e.ID).Msg("event updated")
	c.JSON(http.StatusOK, toDTO(e))
}

func (h *Handler) Delete(c *gin.Context, id auth.Identity) {
	eventID := c.Param("id")
	if err := h.repo.Delete(c.Request.Context(), eventID); err != nil {
		apiutil.Error(c, err)
		return
	}
	log.Ctx(c.Request.Context()).Info().Str("admin", id.Username).Str("event_id", eventID).Msg("event deleted")
	apiutil.OK(c)
}

func toInput(req types.EventRequest) events.EventInput {
	in := events.EventInput{
		Title:       strings.TrimSpace(req.Title),
		Slug:        req.Slug,
		Description: req.Description,
		EndDate:     req.EndDate,
		Status:      events.Status(req.Status),
		CoverImage:  req.CoverImage,
		Location:    req.Location,
		IsFeatured:  req.IsFeatured,
	}
	if req.StartDate != nil {
		in.StartDate = *req.StartDate
	}
	return in
}

func toDTO(e *events.Event) types.Event {
	return types.Event{
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
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
