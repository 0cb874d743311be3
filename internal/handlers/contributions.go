package handlers

import (
	"net/http"

	"github.com/0xarchit/github-profile-analyzer/internal/services"
	"github.com/gin-gonic/gin"
)

type ContributionsHandler struct {
	contributionService *services.ContributionService
}

func NewContributionsHandler(contributionService *services.ContributionService) *ContributionsHandler {
	return &ContributionsHandler{
		contributionService: contributionService,
	}
}

// Contributions handles GET /contributions, serving the calendar SVG from
// the pass-through cache when fresh
func (h *ContributionsHandler) Contributions(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username parameter is required"})
		return
	}

	// Cache key is the exact request URL
	cacheKey := c.Request.Host + c.Request.URL.RequestURI()

	svg, err := h.contributionService.Render(c.Request.Context(), cacheKey, username)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/svg+xml", svg)
}
