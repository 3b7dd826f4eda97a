package http

import (
	"github.com/gin-gonic/gin"

	"task-suggestion/internal/middleware"
)

// RegisterRoutes maps the catalog endpoints. Reload requires the admin token.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/reload-data", mw.AdminAuth(), h.Reload)
	rg.GET("/status", h.Status)
}
