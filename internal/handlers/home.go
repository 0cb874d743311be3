package handlers

import (
	"github.com/gin-gonic/gin"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Index serves the dashboard page
func (h *HomeHandler) Index(c *gin.Context) {
	c.File("./web/static/index.html")
}
