package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"

	"shopapi/internal/handlers"
	"shopapi/internal/repositories"
	"shopapi/internal/services"
	"shopapi/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8000")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	databaseURL := viper.GetString("DATABASE_URL")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Initialize Store ---
	// Connect never fails startup: a missing DATABASE_URL or an unreachable
	// database yields an unconfigured store and the API degrades per route.
	store := repositories.Connect(databaseURL)
	productRepo := repositories.NewGORMProductRepository(store)

	// --- Initialize RabbitMQ Client (optional) ---
	var publisher services.EventPublisher
	if rabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("Failed to initialize RabbitMQ client, continuing without events: %v", err)
		} else {
			defer mqClient.Close()
			publisher = mqClient
		}
	}

	// --- Seed the catalog ---
	seeder := services.NewSeeder(productRepo, publisher)
	report := seeder.Run()
	if report.Inserted > 0 || report.Skipped > 0 {
		log.Printf("Seeded catalog: %d inserted, %d skipped", report.Inserted, report.Skipped)
	}

	// --- Initialize Services ---
	catalogService := services.NewCatalogService(productRepo)

	// --- Initialize Handlers ---
	productHandler := handlers.NewProductHandler(catalogService, store)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger
	app.Use(cors.New())   // Allow all origins, the frontend is served elsewhere

	// --- API Routes ---
	productHandler.RegisterRoutes(app)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
