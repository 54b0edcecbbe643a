package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"

	"gallery-app/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeInput strips HTML from every string in a JSON body, at any depth.
// Plain text such as "Black & White" survives unchanged; entity-encoded
// markup is decoded and stripped like literal markup.
func SanitizeInput() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			abortBadBody(c, "Invalid body")
			return
		}

		dec := json.NewDecoder(bytes.NewReader(buf))
		dec.UseNumber()
		var body interface{}
		if err := dec.Decode(&body); err != nil {
			abortBadBody(c, "Malformed JSON")
			return
		}

		newBody, err := json.Marshal(sanitize(policy, body))
		if err != nil {
			abortBadBody(c, "Malformed JSON")
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}

func sanitize(policy *bluemonday.Policy, v interface{}) interface{} {
	switch t := v.(type) {
	case string:
		return cleanString(policy, t)
	case map[string]interface{}:
		for k, val := range t {
			t[k] = sanitize(policy, val)
		}
		return t
	case []interface{}:
		for i, val := range t {
			t[i] = sanitize(policy, val)
		}
		return t
	default:
		return v
	}
}

// maxCleanPasses bounds decoding of nested entity encodings.
const maxCleanPasses = 8

// cleanString sanitizes and decodes s until it stops changing, so markup
// hidden behind one or more layers of entities cannot come back to life.
// If no fixed point is reached the sanitized, still-escaped form is kept.
func cleanString(policy *bluemonday.Policy, s string) string {
	for i := 0; i < maxCleanPasses; i++ {
		next := html.UnescapeString(policy.Sanitize(s))
		if next == s {
			return s
		}
		s = next
	}
	return policy.Sanitize(s)
}

func abortBadBody(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error":   apperr.CodeValidation,
		"message": msg,
	})
}
