package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shelterhq/pawhaven/internal/interfaces/http/handlers"
	"github.com/shelterhq/pawhaven/internal/interfaces/http/middleware"
)

type AdoptionRecordRouteConfig struct {
	AdoptionRecordHandler *handlers.AdoptionRecordHandler
	AuthMiddleware        *middleware.AuthMiddleware
}

func SetupAdoptionRecordRoutes(engine *gin.Engine, config *AdoptionRecordRouteConfig) {
	records := engine.Group("/adoption-records")
	records.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths BEFORE parameterized paths to avoid route conflicts
		records.POST("", config.AdoptionRecordHandler.Create)
		records.GET("", config.AdoptionRecordHandler.List)
		records.GET("/stats", config.AdoptionRecordHandler.Stats)

		records.GET("/:id", config.AdoptionRecordHandler.Get)
		records.PATCH("/:id", config.AdoptionRecordHandler.Update)
		records.POST("/:id/follow-up", config.AdoptionRecordHandler.AddFollowUp)
		records.DELETE("/:id", config.AdoptionRecordHandler.Delete)
	}
}
