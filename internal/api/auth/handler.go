package auth

import (
	"context"
	"net/http"

	"gallery-app/internal/api/apiutil"
	"gallery-app/internal/app/http/middleware"
	"gallery-app/internal/auth"
	"gallery-app/pkg/types"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (auth.Session, error)
}

type Handler struct {
	svc    Authenticator
	cookie middleware.SessionCookie
}

func NewHandler(svc Authenticator, cookie middleware.SessionCookie) *Handler {
	return &Handler{svc: svc, cookie: cookie}
}

// Login checks the credentials and sets the session cookie.
func (h *Handler) Login(c *gin.Context) {
	var input types.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		apiutil.BindError(c, err)
		return
	}

	sess, err := h.svc.Authenticate(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		log.Ctx(c.Request.Context()).Info().Err(err).Msg("login failed")
		apiutil.Error(c, err)
		return
	}

	h.cookie.Set(c, sess.Token)
	log.Ctx(c.Request.Context()).Info().Str("admin", sess.Identity.Username).Msg("login")
	c.JSON(http.StatusOK, identityDTO(sess.Identity))
}

// Logout only clears the cookie; an issued token stays valid until it expires.
func (h *Handler) Logout(c *gin.Context) {
	h.cookie.Clear(c)
	apiutil.OK(c)
}

func (h *Handler) Me(c *gin.Context, id auth.Identity) {
	c.JSON(http.StatusOK, identityDTO(id))
}

func identityDTO(id auth.Identity) types.Identity {
	return types.Identity{ID: id.ID, Username: id.Username}
}
