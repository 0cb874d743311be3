package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/0xarchit/github-profile-analyzer/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newOriginRouter(trustedOrigin string) *gin.Engine {
	config.AppConfig = &config.Config{TrustedOrigin: trustedOrigin}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(OriginRequired())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})
	return router
}

func TestOriginRequired(t *testing.T) {
	t.Run("Matching origin is allowed", func(t *testing.T) {
		router := newOriginRouter("https://dashboard.example.com")

		req, _ := http.NewRequest("GET", "/test", nil)
		req.Header.Set("Origin", "https://dashboard.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Referer is used when origin header is absent", func(t *testing.T) {
		router := newOriginRouter("https://dashboard.example.com")

		req, _ := http.NewRequest("GET", "/test", nil)
		req.Header.Set("Referer", "https://dashboard.example.com/page")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Mismatched origin is rejected", func(t *testing.T) {
		router := newOriginRouter("https://dashboard.example.com")

		req, _ := http.NewRequest("GET", "/test", nil)
		req.Header.Set("Origin", "https://evil.example.net")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"Cross-origin requests are not allowed"}`, w.Body.String())
	})

	t.Run("Absent headers are rejected", func(t *testing.T) {
		router := newOriginRouter("https://dashboard.example.com")

		req, _ := http.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Unconfigured gate rejects everything", func(t *testing.T) {
		router := newOriginRouter("")

		req, _ := http.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)

		req, _ = http.NewRequest("GET", "/test", nil)
		req.Header.Set("Origin", "https://anything.example.com")
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
