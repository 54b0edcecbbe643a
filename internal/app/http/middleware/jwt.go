package middleware

import (
	"net/http"

	"gallery-app/internal/apperr"
	"gallery-app/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// TokenValidator checks a session token without any I/O.
type TokenValidator interface {
	Validate(token string) (auth.Identity, error)
}

// RequireSession reads the session cookie, validates the token and stores the
// identity in the request context. Anything else ends the request with 401.
func RequireSession(v TokenValidator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			abortUnauthorized(c, "Authentication required")
			return
		}

		id, err := v.Validate(token)
		if err != nil {
			log.Ctx(c.Request.Context()).Debug().Err(err).Msg("rejected session token")
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}

// Authed hands the session identity to h as an argument. Routes using it must
// sit behind RequireSession.
func Authed(h func(c *gin.Context, id auth.Identity)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := auth.IdentityFrom(c.Request.Context())
		if !ok {
			abortUnauthorized(c, "Authentication required")
			return
		}
		h(c, id)
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   apperr.CodeUnauthorized,
		"message": msg,
	})
}

// SessionCookie writes and clears the httpOnly session cookie.
type SessionCookie struct {
	Name   string
	Secure bool
}

func (sc SessionCookie) Set(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, token, int(auth.TokenTTL.Seconds()), "/", "", sc.Secure, true)
}

// Clear expires the cookie immediately. The token itself stays valid until
// its exp claim.
func (sc SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, "", -1, "/", "", sc.Secure, true)
}
