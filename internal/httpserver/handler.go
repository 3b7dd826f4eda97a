package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	catalogHTTP "task-suggestion/internal/catalog/delivery/http"
	"task-suggestion/internal/middleware"
	"task-suggestion/internal/model"
	suggestionHTTP "task-suggestion/internal/suggestion/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.middleware)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(gin.Logger())
	}
	srv.gin.Use(mw.ProcessTime(), mw.TraceID(), mw.CORS(), mw.Timeout())

	srv.l.Infof(context.Background(), "CORS mode: allow all (%s)", srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	suggestionHTTP.RegisterRoutes(api, suggestionHTTP.New(srv.l, srv.suggestionUC), mw)
	srv.l.Infof(ctx, "Suggestion routes registered at POST /api/v1/suggest-tasks, POST /api/v1/validate-description")

	if srv.catalogUC != nil {
		catalogHTTP.RegisterRoutes(api, catalogHTTP.New(srv.l, srv.catalogUC), mw)
		srv.l.Infof(ctx, "Catalog routes registered at POST /api/v1/reload-data, GET /api/v1/status")
	} else {
		srv.l.Infof(ctx, "Catalog not configured, skipping reload and status routes")
	}

	return nil
}
