package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
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

	if srv.transportRateLimit > 0 {
		srv.gin.Use(srv.mw.RateLimit(srv.transportRateLimit))
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.root)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api")
	ws := srv.gin.Group("/ws")

	api.POST("/command", srv.assistantHandler.ProcessCommand)
	api.POST("/voice", srv.assistantHandler.ProcessVoice)
	api.GET("/history/:user_id", srv.assistantHandler.History)
	api.GET("/settings/:user_id", srv.assistantHandler.GetSettings)
	api.PUT("/settings/:user_id", srv.assistantHandler.UpdateSettings)

	ws.GET("/voice/:client_id", srv.assistantHandler.VoiceSocket)

	srv.l.Infof(ctx, "Assistant routes registered under /api and /ws")
	return nil
}
