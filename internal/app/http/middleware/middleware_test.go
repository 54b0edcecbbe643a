package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gallery-app/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeValidator map[string]auth.Identity

func (f fakeValidator) Validate(token string) (auth.Identity, error) {
	id, ok := f[token]
	if !ok {
		return auth.Identity{}, errors.New("bad token")
	}
	return id, nil
}

func sessionRouter(calls *int) *gin.Engine {
	r := gin.New()
	v := fakeValidator{"good": {ID: "1", Username: "curator"}}
	r.POST("/write", RequireSession(v, "token"), Authed(func(c *gin.Context, id auth.Identity) {
		*calls++
		c.JSON(http.StatusOK, id)
	}))
	return r
}

func TestRequireSession(t *testing.T) {
	tests := []struct {
		name      string
		cookie    *http.Cookie
		wantCode  int
		wantCalls int
	}{
		{"no cookie", nil, http.StatusUnauthorized, 0},
		{"empty cookie", &http.Cookie{Name: "token", Value: ""}, http.StatusUnauthorized, 0},
		{"invalid token", &http.Cookie{Name: "token", Value: "forged"}, http.StatusUnauthorized, 0},
		{"other cookie name", &http.Cookie{Name: "session", Value: "good"}, http.StatusUnauthorized, 0},
		{"valid token", &http.Cookie{Name: "token", Value: "good"}, http.StatusOK, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			r := sessionRouter(&calls)

			req := httptest.NewRequest(http.MethodPost, "/write", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantCode == http.StatusUnauthorized {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, "unauthorized", body["error"])
			}
		})
	}
}

func TestAuthedWithoutSession(t *testing.T) {
	r := gin.New()
	r.GET("/me", Authed(func(c *gin.Context, id auth.Identity) {
		t.Fatal("handler must not run")
	}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionCookie(t *testing.T) {
	sc := SessionCookie{Name: "token", Secure: true}
	r := gin.New()
	r.GET("/set", func(c *gin.Context) { sc.Set(c, "abc") })
	r.GET("/clear", func(c *gin.Context) { sc.Clear(c) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/set", nil))
	set := w.Result().Cookies()
	require.Len(t, set, 1)
	assert.Equal(t, "abc", set[0].Value)
	assert.True(t, set[0].HttpOnly)
	assert.True(t, set[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, set[0].SameSite)
	assert.Equal(t, 7*24*60*60, set[0].MaxAge)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clear", nil))
	cleared := w.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Empty(t, cleared[0].Value)
	assert.Less(t, cleared[0].MaxAge, 0)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestSanitizeInput(t *testing.T) {
	r := gin.New()
	r.Use(SanitizeInput())
	r.POST("/echo", func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "application/json", b)
	})

	body := `{"title":"<script>alert(1)</script>Black & White","year":2021,` +
		`"nested":{"bio":"<b>bold</b>"},"tags":["<i>a</i>","b"],"flag":true,"none":null}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Black & White", got["title"])
	assert.Equal(t, float64(2021), got["year"])
	assert.Equal(t, map[string]interface{}{"bio": "bold"}, got["nested"])
	assert.Equal(t, []interface{}{"a", "b"}, got["tags"])
	assert.Equal(t, true, got["flag"])
	assert.Nil(t, got["none"])
}

func TestSanitizeInputEncodedMarkup(t *testing.T) {
	r := gin.New()
	r.Use(SanitizeInput())
	r.POST("/echo", func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "application/json", b)
	})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"encoded tag", "&lt;img src=x onerror=alert(1)&gt;", ""},
		{"double encoded script", "&amp;lt;script&amp;gt;alert(1)&amp;lt;/script&amp;gt;", ""},
		{"encoded tag around text", "Blue &lt;b&gt;Period&lt;/b&gt;", "Blue Period"},
		{"comparison", "a < b", "a < b"},
		{"ampersand", "Tom & Jerry", "Tom & Jerry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(map[string]string{"title": tt.in})
			require.NoError(t, err)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(string(body))))
			require.Equal(t, http.StatusOK, w.Code)

			var got map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got["title"])
			assert.NotContains(t, got["title"], "<img")
			assert.NotContains(t, got["title"], "<script")
		})
	}
}

func TestSanitizeInputMalformed(t *testing.T) {
	r := gin.New()
	r.Use(SanitizeInput())
	r.POST("/echo", func(c *gin.Context) { t.Fatal("handler must not run") })
	r.DELETE("/echo", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("{nope")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/echo", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
