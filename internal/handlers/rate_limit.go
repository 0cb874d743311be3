package handlers

import (
	"net/http"

	"github.com/0xarchit/github-profile-analyzer/internal/services"
	"github.com/gin-gonic/gin"
)

type RateLimitHandler struct {
	githubService *services.GitHubService
}

func NewRateLimitHandler(githubService *services.GitHubService) *RateLimitHandler {
	return &RateLimitHandler{
		githubService: githubService,
	}
}

// RateLimit handles GET /rate_limit, summing quota across the token pool.
// Tokens whose quota call fails are skipped, the endpoint never hard-fails.
func (h *RateLimitHandler) RateLimit(c *gin.Context) {
	report := h.githubService.AggregateRateLimits(c.Request.Context())
	c.JSON(http.StatusOK, report)
}
