package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/campus-events/api/internal/container"
	"github.com/campus-events/api/internal/handlers"
	"github.com/campus-events/api/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container, corsOrigins []string) *gin.Engine {
	// Set Gin mode for production
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"service":   "campus-events-api",
			"timestamp": time.Now().UTC(),
		})
	})

	// File upload for ancillary assets (event banners etc.)
	r.POST("/upload", handlers.UploadFile(container.Cloudinary))

	api := r.Group("/api")
	{
		eventRoutes := api.Group("/events")
		{
			eventRoutes.GET("", handlers.ListEvents(container.EventService))
			eventRoutes.GET("/:id", handlers.GetEvent(container.EventService))
			eventRoutes.POST("", handlers.CreateEvent(container.EventService))
			eventRoutes.PUT("/:id", handlers.UpdateEvent(container.EventService))
			eventRoutes.DELETE("/:id", handlers.DeleteEvent(container.EventService))
			eventRoutes.GET("/:id/registrations", handlers.ListEventRegistrations(container.RegistrationService))
		}

		registrationRoutes := api.Group("/registrations")
		{
			registrationRoutes.GET("", handlers.ListRegistrations(container.RegistrationService))
			registrationRoutes.POST("", handlers.CreateRegistration(container.RegistrationService))
			registrationRoutes.DELETE("/:id", handlers.CancelRegistration(container.RegistrationService))
		}

		api.GET("/certificates", handlers.ListCertificates(container.CertificateService))
	}

	return r
}
