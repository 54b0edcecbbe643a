package apiutil

import (
	"fmt"

	"gallery-app/internal/apperr"

	"github.com/gin-gonic/gin"
)

// BoolQuery reads an optional true|false query parameter. Absent means nil.
// Filters built from it are equality filters: featured=false selects the
// non-featured rows rather than disabling the filter (see DESIGN.md,
// "Open questions").
func BoolQuery(c *gin.Context, key string) (*bool, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil, nil
	}
	switch raw {
	case "true":
		v := true
		return &v, nil
	case "false":
		v := false
		return &v, nil
	}
	return nil, fmt.Errorf("%s must be true or false, got %q: %w", key, raw, apperr.ErrValidation)
}

// EnumQuery reads an optional query parameter that must be one of allowed.
func EnumQuery[T ~string](c *gin.Context, key string, allowed []T) (*T, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil, nil
	}
	for _, a := range allowed {
		if string(a) == raw {
			v := a
			return &v, nil
		}
	}
	return nil, fmt.Errorf("unknown %s %q: %w", key, raw, apperr.ErrValidation)
}
