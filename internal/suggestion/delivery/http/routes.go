package http

import (
	"github.com/gin-gonic/gin"

	"task-suggestion/internal/middleware"
)

// RegisterRoutes maps the suggestion endpoints. Both are rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/suggest-tasks", mw.RateLimit(), h.Suggest)
	rg.POST("/validate-description", mw.RateLimit(), h.Validate)
}
