package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shelterhq/pawhaven/internal/interfaces/http/handlers"
	"github.com/shelterhq/pawhaven/internal/interfaces/http/middleware"
)

type DonationRouteConfig struct {
	DonationHandler *handlers.DonationHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupDonationRoutes(engine *gin.Engine, config *DonationRouteConfig) {
	donations := engine.Group("/donations")
	donations.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths BEFORE parameterized paths to avoid route conflicts
		donations.POST("", config.DonationHandler.Create)
		donations.GET("", config.DonationHandler.List)
		donations.GET("/stats", config.DonationHandler.Stats)

		donations.GET("/:id", config.DonationHandler.Get)
		donations.PATCH("/:id", config.DonationHandler.Update)
		donations.POST("/:id/confirm", config.DonationHandler.Confirm)
		donations.POST("/:id/cancel", config.DonationHandler.Cancel)
		donations.POST("/:id/receipt", config.DonationHandler.IssueReceipt)
		donations.DELETE("/:id", config.DonationHandler.Delete)
	}
}
