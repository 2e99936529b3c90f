package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shelterhq/pawhaven/internal/interfaces/http/handlers"
	"github.com/shelterhq/pawhaven/internal/interfaces/http/middleware"
)

type AdoptionRouteConfig struct {
	AdoptionHandler *handlers.AdoptionHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupAdoptionRoutes(engine *gin.Engine, config *AdoptionRouteConfig) {
	adoptions := engine.Group("/adoptions")
	adoptions.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths BEFORE parameterized paths to avoid route conflicts
		adoptions.POST("", config.AdoptionHandler.Create)
		adoptions.GET("", config.AdoptionHandler.List)
		adoptions.GET("/stats", config.AdoptionHandler.Stats)

		adoptions.GET("/:id", config.AdoptionHandler.Get)
		adoptions.PATCH("/:id", config.AdoptionHandler.Update)
		adoptions.POST("/:id/approve", config.AdoptionHandler.Review)
		adoptions.POST("/:id/cancel", config.AdoptionHandler.Cancel)
		adoptions.DELETE("/:id", config.AdoptionHandler.Delete)
	}
}
