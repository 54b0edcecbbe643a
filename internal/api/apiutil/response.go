// Package apiutil holds the response and query helpers shared by the
// resource handlers.
package apiutil

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gallery-app/internal/apperr"
	"gallery-app/pkg/types"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// Error writes the structured error body for err. Unknown errors are logged
// and reported as a generic 500.
func Error(c *gin.Context, err error) {
	status := apperr.Status(err)
	body := types.ErrorResponse{Error: apperr.Code(err), Message: message(err)}

	if !apperr.IsKnown(err) {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
		body.Message = "Unable to process request. Please try again later."
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, body)
}

func message(err error) string {
	switch {
	case errors.Is(err, apperr.ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, apperr.ErrUnauthorized):
		return "Authentication required"
	default:
		return err.Error()
	}
}

// BindError reports a request body that failed to decode or validate.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		err = fmt.Errorf("invalid fields: %s", strings.Join(fields, ", "))
	} else {
		err = fmt.Errorf("invalid request body: %v", err)
	}
	Error(c, fmt.Errorf("%w: %w", apperr.ErrValidation, err))
}

func OK(c *gin.Context) {
	c.JSON(http.StatusOK, types.OKResponse{OK: true})
}
