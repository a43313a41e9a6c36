package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"

	"katalog/internal/api"
	"katalog/internal/config"
	"katalog/internal/handlers"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	// --- Logging ---
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// --- Initialize API Client ---
	// The backend is the single source of truth; the admin client keeps
	// no state of its own between requests.
	apiClient := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, log)

	// --- Initialize Handlers ---
	homeHandler := handlers.NewHomeHandler(apiClient, cfg, log)
	productHandler := handlers.NewProductHandler(apiClient, log)
	categoryHandler := handlers.NewCategoryHandler(apiClient, log)
	sellerHandler := handlers.NewSellerHandler(apiClient, log)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- Routes ---
	homeHandler.RegisterRoutes(app)
	productHandler.RegisterRoutes(app)
	categoryHandler.RegisterRoutes(app)
	sellerHandler.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"time":    time.Now().Format(time.RFC3339),
			"backend": cfg.APIBaseURL,
		})
	})

	// --- Start HTTP Server ---
	log.Infof("Starting admin client on %s against %s", cfg.AppPort, cfg.APIBaseURL)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during Fiber shutdown: %v", err)
	}
	log.Info("Server gracefully stopped")
}
