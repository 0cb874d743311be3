package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/0xarchit/github-profile-analyzer/internal/services"
	"github.com/gin-gonic/gin"
)

// respondUpstreamError forwards an upstream status code when the error
// carries one, otherwise reports a generic internal error
func respondUpstreamError(c *gin.Context, err error) {
	var statusErr *services.StatusError
	if errors.As(err, &statusErr) {
		c.JSON(statusErr.StatusCode, gin.H{"error": statusErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Internal error: %s", err.Error())})
}
