package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shelterhq/pawhaven/internal/interfaces/http/handlers"
	"github.com/shelterhq/pawhaven/internal/interfaces/http/middleware"
)

type RescueRouteConfig struct {
	RescueHandler  *handlers.RescueHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRescueRoutes(engine *gin.Engine, config *RescueRouteConfig) {
	rescues := engine.Group("/rescues")
	rescues.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths BEFORE parameterized paths to avoid route conflicts
		rescues.POST("", config.RescueHandler.Create)
		rescues.GET("", config.RescueHandler.List)
		rescues.GET("/stats", config.RescueHandler.Stats)

		rescues.GET("/:id", config.RescueHandler.Get)
		rescues.PATCH("/:id", config.RescueHandler.Update)
		rescues.DELETE("/:id", config.RescueHandler.Delete)
	}
}
