package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nicoxroll/frikioteca/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSessionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(capture *string) *gin.Engine {
		r := gin.New()
		r.Use(middleware.SessionMiddleware())
		r.GET("/", func(c *gin.Context) {
			*capture = c.GetString("session_id")
			c.Status(http.StatusOK)
		})
		return r
	}

	t.Run("issues_cookie_on_first_visit", func(t *testing.T) {
		var sid string
		r := newRouter(&sid)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.NotEmpty(t, sid)

		var cookie *http.Cookie
		for _, c := range w.Result().Cookies() {
			if c.Name == middleware.SessionCookie {
				cookie = c
			}
		}
		assert.NotNil(t, cookie)
		assert.Equal(t, sid, cookie.Value)
	})

	t.Run("reuses_existing_cookie", func(t *testing.T) {
		var sid string
		r := newRouter(&sid)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "sesion-existente"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "sesion-existente", sid)
		assert.Empty(t, w.Result().Cookies())
	})
}
