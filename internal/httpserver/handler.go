package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"voice-task-tracker/internal/model"
	taskHTTP "voice-task-tracker/internal/task/delivery/http"
	voiceHTTP "voice-task-tracker/internal/voice/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.CORS())
	if srv.mode == gin.DebugMode {
		srv.gin.Use(gin.Logger())
	}

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
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

// registerDomainRoutes registers all domain routes under /api.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	voiceHTTP.RegisterRoutes(api.Group("/voice"), voiceHTTP.New(srv.l, srv.voiceUC), srv.mw)
	srv.l.Infof(ctx, "Voice routes registered at POST /api/voice/parse")

	if srv.taskUC != nil {
		taskHTTP.RegisterRoutes(api.Group("/tasks"), taskHTTP.New(srv.l, srv.taskUC))
		srv.l.Infof(ctx, "Task routes registered at /api/tasks")
	} else {
		srv.l.Infof(ctx, "Task store not configured, skipping /api/tasks routes")
	}

	return nil
}
