package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shelterhq/pawhaven/internal/interfaces/http/handlers"
	"github.com/shelterhq/pawhaven/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths BEFORE parameterized paths to avoid route conflicts
		users.POST("", config.UserHandler.Create)
		users.GET("", config.UserHandler.List)
		users.GET("/stats", config.UserHandler.Stats)
		users.GET("/me", config.UserHandler.Me)

		users.GET("/:id", config.UserHandler.Get)
		users.PUT("/:id", config.UserHandler.Update)
		users.POST("/:id/freeze", config.UserHandler.Freeze)
		users.POST("/:id/unfreeze", config.UserHandler.Unfreeze)
		users.POST("/:id/reset-password", config.UserHandler.ResetPassword)
		users.DELETE("/:id", config.UserHandler.Delete)
	}
}
