package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shelterhq/pawhaven/internal/interfaces/http/handlers"
	"github.com/shelterhq/pawhaven/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	notifications := engine.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths BEFORE parameterized paths to avoid route conflicts
		notifications.POST("", config.NotificationHandler.Create)
		notifications.GET("", config.NotificationHandler.List)
		notifications.GET("/unread-count", config.NotificationHandler.UnreadCount)
		notifications.POST("/mark-all-read", config.NotificationHandler.MarkAllRead)

		notifications.GET("/:id", config.NotificationHandler.Get)
		notifications.PATCH("/:id", config.NotificationHandler.Update)
		notifications.POST("/:id/mark-read", config.NotificationHandler.MarkRead)
		notifications.DELETE("/:id", config.NotificationHandler.Delete)
	}
}
