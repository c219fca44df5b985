package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/bitsphere-automation/LD-InvGen/internal/application/service"
	"github.com/bitsphere-automation/LD-InvGen/internal/config"
	"github.com/bitsphere-automation/LD-InvGen/internal/infrastructure/repository"
	"github.com/bitsphere-automation/LD-InvGen/internal/presentation/http/handler"
	"github.com/bitsphere-automation/LD-InvGen/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Sessions live in memory for the lifetime of the process; exports are
	// the only durable output.
	sessionRepo := repository.NewSessionRepository()

	// Initialize services
	sessionService := service.NewSessionService(sessionRepo)
	exportService := service.NewExportService(sessionRepo, &cfg.Invoice)

	// Initialize handlers
	handlers := &routes.Handlers{
		Session: handler.NewSessionHandler(sessionService),
		Export:  handler.NewExportHandler(exportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{Cfg: cfg})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
