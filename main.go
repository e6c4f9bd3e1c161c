package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"

	"gallery/internal/handlers"
	"gallery/internal/middleware"
	"gallery/internal/models"
	"gallery/internal/repositories"
	"gallery/internal/services"
	"gallery/internal/uploads"
	"gallery/pkg/rabbitmq"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "gallery.db")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// --- Initialize Repositories ---
	userRepo, imageRepo, err := buildRepositories()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// --- Initialize RabbitMQ Client (optional) ---
	// Events are best-effort; when no broker is configured the services run
	// without one.
	var mqClient *rabbitmq.Client
	if rabbitMQURL := viper.GetString("RABBITMQ_URL"); rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, continuing without events: %v", err)
		} else {
			defer mqClient.Close()
		}
	}

	// --- Initialize Upload Store ---
	uploadStore, err := uploads.NewStore(viper.GetString("UPLOAD_DIR"))
	if err != nil {
		log.Fatalf("Failed to initialize upload store: %v", err)
	}

	// --- Initialize Services ---
	tokenService := services.NewTokenService(jwtSecret)
	authService := services.NewAuthService(userRepo, tokenService, mqClient)
	imageService := services.NewImageService(imageRepo, userRepo, mqClient)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	imageHandler := handlers.NewImageHandler(imageService, uploadStore)

	// --- Initialize Fiber App ---
	app := fiber.New(fiber.Config{
		// Leave headroom above the upload store's own 5 MiB ceiling.
		BodyLimit: 10 * 1024 * 1024,
	})

	// --- Middleware ---
	app.Use(logger.New())

	// Stored images are served straight from disk; the API only hands out
	// their /uploads/... locators.
	app.Static("/uploads", uploadStore.Dir())

	// --- API Routes ---
	// Auth routes are public; everything under /api passes the token gate.
	authHandler.RegisterRoutes(app)
	api := app.Group("/api", middleware.AuthRequired(tokenService))
	imageHandler.RegisterRoutes(api)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start Event Consumer in a Goroutine ---
	if mqClient != nil {
		go func() {
			log.Println("Starting event consumer...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received event %s (tag %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start event consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// buildRepositories picks the storage backend from configuration: postgres
// or sqlite through GORM, or the in-memory repositories for running without
// a database at all.
func buildRepositories() (repositories.UserRepository, repositories.ImageRepository, error) {
	driver := viper.GetString("DB_DRIVER")
	if driver == "memory" {
		log.Println("Using in-memory repositories; data will not survive a restart")
		return repositories.NewMockUserRepository(), repositories.NewMockImageRepository(), nil
	}

	dsn := viper.GetString("DB_DSN")
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, nil, err
	}
	if err := db.AutoMigrate(&models.Credential{}, &models.User{}, &models.Image{}); err != nil {
		return nil, nil, err
	}
	return repositories.NewGORMUserRepository(db), repositories.NewGORMImageRepository(db), nil
}
