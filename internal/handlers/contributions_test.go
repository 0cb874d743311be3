package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/0xarchit/github-profile-analyzer/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestContributionsMissingUsername(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewContributionsHandler(&services.ContributionService{})
	router.GET("/contributions", handler.Contributions)

	req, _ := http.NewRequest("GET", "/contributions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Username parameter is required"}`, w.Body.String())
}
