package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shelterhq/pawhaven/internal/interfaces/http/handlers"
	"github.com/shelterhq/pawhaven/internal/interfaces/http/middleware"
)

type VolunteerRouteConfig struct {
	VolunteerHandler *handlers.VolunteerHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupVolunteerRoutes(engine *gin.Engine, config *VolunteerRouteConfig) {
	volunteers := engine.Group("/volunteers")
	volunteers.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths BEFORE parameterized paths to avoid route conflicts
		volunteers.POST("", config.VolunteerHandler.Create)
		volunteers.GET("", config.VolunteerHandler.List)
		volunteers.GET("/stats", config.VolunteerHandler.Stats)

		volunteers.GET("/:id", config.VolunteerHandler.Get)
		volunteers.PATCH("/:id", config.VolunteerHandler.Update)
		volunteers.POST("/:id/hours", config.VolunteerHandler.AddHours)
		volunteers.DELETE("/:id", config.VolunteerHandler.Delete)
	}
}
