package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shelterhq/pawhaven/internal/interfaces/http/handlers"
	"github.com/shelterhq/pawhaven/internal/interfaces/http/middleware"
)

type ActivityRouteConfig struct {
	ActivityHandler *handlers.ActivityHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupActivityRoutes(engine *gin.Engine, config *ActivityRouteConfig) {
	activities := engine.Group("/activities")
	activities.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths BEFORE parameterized paths to avoid route conflicts
		activities.POST("", config.ActivityHandler.Create)
		activities.GET("", config.ActivityHandler.List)
		activities.GET("/stats", config.ActivityHandler.Stats)

		activities.GET("/:id", config.ActivityHandler.Get)
		activities.PATCH("/:id", config.ActivityHandler.Update)
		activities.POST("/:id/join", config.ActivityHandler.Join)
		activities.POST("/:id/leave", config.ActivityHandler.Leave)
		activities.DELETE("/:id", config.ActivityHandler.Delete)
	}
}
