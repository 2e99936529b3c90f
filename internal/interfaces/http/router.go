package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	activityapp "github.com/shelterhq/pawhaven/internal/application/activity"
	adoptionapp "github.com/shelterhq/pawhaven/internal/application/adoption"
	recordapp "github.com/shelterhq/pawhaven/internal/application/adoptionrecord"
	authapp "github.com/shelterhq/pawhaven/internal/application/auth"
	dashboardapp "github.com/shelterhq/pawhaven/internal/application/dashboard"
	donationapp "github.com/shelterhq/pawhaven/internal/application/donation"
	notificationapp "github.com/shelterhq/pawhaven/internal/application/notification"
	petapp "github.com/shelterhq/pawhaven/internal/application/pet"
	rescueapp "github.com/shelterhq/pawhaven/internal/application/rescue"
	userapp "github.com/shelterhq/pawhaven/internal/application/user"
	volunteerapp "github.com/shelterhq/pawhaven/internal/application/volunteer"
	"github.com/shelterhq/pawhaven/internal/infrastructure/auth"
	"github.com/shelterhq/pawhaven/internal/infrastructure/config"
	"github.com/shelterhq/pawhaven/internal/infrastructure/repository"
	"github.com/shelterhq/pawhaven/internal/interfaces/http/handlers"
	"github.com/shelterhq/pawhaven/internal/interfaces/http/middleware"
	"github.com/shelterhq/pawhaven/internal/interfaces/http/routes"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
)

// Router wires repositories, services and handlers onto a Gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds the full HTTP surface from configuration and a database handle.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.CORS(cfg.Server.CORSOrigins))

	petRepo := repository.NewPetRepository(db, log)
	adoptionRepo := repository.NewAdoptionRepository(db, log)
	recordRepo := repository.NewAdoptionRecordRepository(db, log)
	rescueRepo := repository.NewRescueRepository(db, log)
	activityRepo := repository.NewActivityRepository(db, log)
	volunteerRepo := repository.NewVolunteerRepository(db, log)
	donationRepo := repository.NewDonationRepository(db, log)
	notificationRepo := repository.NewNotificationRepository(db, log)
	userRepo := repository.NewUserRepository(db, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpHours)

	petService := petapp.NewService(petRepo, log)
	adoptionService := adoptionapp.NewService(adoptionRepo, petRepo, log)
	recordService := recordapp.NewService(recordRepo, log)
	rescueService := rescueapp.NewService(rescueRepo, log)
	activityService := activityapp.NewService(activityRepo, log)
	volunteerService := volunteerapp.NewService(volunteerRepo, log)
	donationService := donationapp.NewService(donationRepo, log)
	notificationService := notificationapp.NewService(notificationRepo, log)
	userService := userapp.NewService(userRepo, hasher, log)
	authService := authapp.NewService(userRepo, hasher, jwtService, log)
	dashboardService := dashboardapp.NewService(petRepo, adoptionRepo, volunteerRepo, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler: handlers.NewAuthHandler(authService, log),
	})
	routes.SetupDashboardRoutes(engine, &routes.DashboardRouteConfig{
		DashboardHandler: handlers.NewDashboardHandler(dashboardService, log),
	})
	routes.SetupPetRoutes(engine, &routes.PetRouteConfig{
		PetHandler:     handlers.NewPetHandler(petService, log),
		AuthMiddleware: authMiddleware,
	})
	routes.SetupAdoptionRoutes(engine, &routes.AdoptionRouteConfig{
		AdoptionHandler: handlers.NewAdoptionHandler(adoptionService, log),
		AuthMiddleware:  authMiddleware,
	})
	routes.SetupAdoptionRecordRoutes(engine, &routes.AdoptionRecordRouteConfig{
		AdoptionRecordHandler: handlers.NewAdoptionRecordHandler(recordService, log),
		AuthMiddleware:        authMiddleware,
	})
	routes.SetupRescueRoutes(engine, &routes.RescueRouteConfig{
		RescueHandler:  handlers.NewRescueHandler(rescueService, log),
		AuthMiddleware: authMiddleware,
	})
	routes.SetupActivityRoutes(engine, &routes.ActivityRouteConfig{
		ActivityHandler: handlers.NewActivityHandler(activityService, log),
		AuthMiddleware:  authMiddleware,
	})
	routes.SetupVolunteerRoutes(engine, &routes.VolunteerRouteConfig{
		VolunteerHandler: handlers.NewVolunteerHandler(volunteerService, log),
		AuthMiddleware:   authMiddleware,
	})
	routes.SetupDonationRoutes(engine, &routes.DonationRouteConfig{
		DonationHandler: handlers.NewDonationHandler(donationService, log),
		AuthMiddleware:  authMiddleware,
	})
	routes.SetupNotificationRoutes(engine, &routes.NotificationRouteConfig{
		NotificationHandler: handlers.NewNotificationHandler(notificationService, log),
		AuthMiddleware:      authMiddleware,
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:    handlers.NewUserHandler(userService, log),
		AuthMiddleware: authMiddleware,
	})

	return &Router{engine: engine}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
