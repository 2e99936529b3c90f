package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shelterhq/pawhaven/internal/interfaces/http/handlers"
)

type DashboardRouteConfig struct {
	DashboardHandler *handlers.DashboardHandler
}

// SetupDashboardRoutes registers the public dashboard endpoints.
func SetupDashboardRoutes(engine *gin.Engine, config *DashboardRouteConfig) {
	dashboard := engine.Group("/dashboard")
	{
		dashboard.GET("", config.DashboardHandler.Dashboard)
		dashboard.GET("/overview", config.DashboardHandler.Overview)
		dashboard.GET("/adoption-trend", config.DashboardHandler.AdoptionTrend)
		dashboard.GET("/pet-distribution", config.DashboardHandler.PetDistribution)
		dashboard.GET("/recent-applications", config.DashboardHandler.RecentApplications)
	}
}
