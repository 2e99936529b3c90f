package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shelterhq/pawhaven/internal/interfaces/http/handlers"
	"github.com/shelterhq/pawhaven/internal/interfaces/http/middleware"
)

type PetRouteConfig struct {
	PetHandler     *handlers.PetHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupPetRoutes(engine *gin.Engine, config *PetRouteConfig) {
	pets := engine.Group("/pets")
	pets.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths BEFORE parameterized paths to avoid route conflicts
		pets.POST("", config.PetHandler.Create)
		pets.GET("", config.PetHandler.List)
		pets.GET("/stats", config.PetHandler.Stats)

		pets.GET("/:id", config.PetHandler.Get)
		pets.PATCH("/:id", config.PetHandler.Update)
		pets.DELETE("/:id", config.PetHandler.Delete)
		pets.POST("/:id/favorite", config.PetHandler.Favorite)
		pets.DELETE("/:id/favorite", config.PetHandler.Unfavorite)
	}
}
