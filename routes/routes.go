package routes

import (
	"net/http"

	"github.com/BSIT-Sanchez/LGC/cache"
	"github.com/BSIT-Sanchez/LGC/config"
	"github.com/BSIT-Sanchez/LGC/controllers"
	"github.com/BSIT-Sanchez/LGC/handlers"
	"github.com/BSIT-Sanchez/LGC/middlewares"
	"github.com/BSIT-Sanchez/LGC/repositories"
	"github.com/BSIT-Sanchez/LGC/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	patientRepo := repositories.NewPatientRepository(cache)
	appointmentRepo := repositories.NewAppointmentRepository(cache)
	billingRepo := repositories.NewBillingRepository(cache)
	staffRepo := repositories.NewStaffRepository(cache)
	inventoryRepo := repositories.NewInventoryRepository(cache)
	reportRepo := repositories.NewReportRepository(cache)
	userRepo := repositories.NewUserRepository(db, cache)

	patientHandler := handlers.NewPatientHandler(services.NewPatientService(patientRepo))
	appointmentHandler := handlers.NewAppointmentHandler(services.NewAppointmentService(appointmentRepo))
	billingHandler := handlers.NewBillingHandler(services.NewBillingService(billingRepo))
	staffHandler := handlers.NewStaffHandler(services.NewStaffService(staffRepo))
	inventoryHandler := handlers.NewInventoryHandler(services.NewInventoryService(inventoryRepo, config.LowStockThreshold))
	reportHandler := handlers.NewReportHandler(services.NewReportService(reportRepo))
	authHandler := handlers.NewAuthHandler(services.NewUserService(userRepo))

	controllers.SetupClinicRoutes(
		router,
		patientHandler,
		appointmentHandler,
		billingHandler,
		staffHandler,
		inventoryHandler,
		reportHandler,
	)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
