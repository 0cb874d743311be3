package middleware

import (
	"net/http"
	"strings"

	"github.com/0xarchit/github-profile-analyzer/pkg/config"
	"github.com/gin-gonic/gin"
)

// OriginRequired rejects requests whose Origin (or Referer, as fallback)
// does not start with the configured trusted origin. An unconfigured trusted
// origin rejects everything; the gate never fails open.
func OriginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		trusted := config.AppConfig.TrustedOrigin

		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = c.GetHeader("Referer")
		}

		if trusted == "" || !strings.HasPrefix(origin, trusted) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Cross-origin requests are not allowed"})
			c.Abort()
			return
		}

		c.Next()
	}
}
