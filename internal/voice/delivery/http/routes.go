package http

import (
	"voice-task-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the voice endpoints. Parsing is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/parse", mw.RateLimit(), h.Parse)
}
