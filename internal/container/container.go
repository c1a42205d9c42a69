package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campus-events/api/internal/config"
	"github.com/campus-events/api/internal/models"
	"github.com/campus-events/api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger     *slog.Logger
	Cloudinary *cloudinary.Cloudinary
	// Database clients
	MongoDBClient *mongo.Client
	Mongo         *models.MongodbRepo

	EventService        *services.EventService
	RegistrationService *services.RegistrationService
	CertificateService  *services.CertificateService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cld *cloudinary.Cloudinary,
	mongoDBClient *mongo.Client,
	cfg *config.Config,
) *Container {
	// Initialize repositories
	mongo := models.MongodbNewRepo(mongoDBClient, cfg.MongoDBDatabase)
	eventService := services.NewEventService(mongo, mongo)
	registrationService := services.NewRegistrationService(mongo, mongo, cfg.AllowOvercapacity)
	certificateService := services.NewCertificateService(mongo, mongo)

	return &Container{
		Logger:              logger,
		Cloudinary:          cld,
		MongoDBClient:       mongoDBClient,
		Mongo:               mongo,
		EventService:        eventService,
		RegistrationService: registrationService,
		CertificateService:  certificateService,
	}
}
