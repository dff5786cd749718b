package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sandrotonal/quran-semantic-api/internal/config"
	"github.com/sandrotonal/quran-semantic-api/internal/handlers"
	"github.com/sandrotonal/quran-semantic-api/internal/middleware"
	"github.com/sandrotonal/quran-semantic-api/internal/providers"
	"github.com/sandrotonal/quran-semantic-api/internal/repository/postgres"
	"github.com/sandrotonal/quran-semantic-api/internal/services"
	"github.com/sandrotonal/quran-semantic-api/pkg/schema/db"
	pkgservices "github.com/sandrotonal/quran-semantic-api/pkg/schema/services"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	// Get configuration
	cfg := config.GetConfig()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSMiddleware())

	// Initialize PostgreSQL
	ctx := context.Background()
	if err := db.InitPostgres(ctx); err != nil {
		log.Fatalf("Failed to initialize PostgreSQL: %v", err)
	}
	log.Println("Database initialization complete")

	// Create repositories
	pgDB := db.GetPostgres()
	verseRepo := postgres.NewVerseRepository(pgDB)
	embeddingRepo := postgres.NewEmbeddingRepository(pgDB)

	// External text providers
	primary := providers.NewAcikkuranClient(cfg.QuranAPIBaseURL, cfg.TranslatorID)
	fallback := providers.NewAlQuranCloudClient(cfg.FallbackAPIBaseURL)

	// Embeddings backend
	embeddingsSvc := pkgservices.GetEmbeddingsService()
	if err := pkgservices.GetInitError(); err != nil {
		log.Fatalf("Failed to initialize embeddings service: %v", err)
	}

	// Core services
	verseResolver := services.NewVerseResolver(verseRepo, primary, fallback)
	embeddingResolver := services.NewEmbeddingResolver(embeddingRepo, embeddingsSvc)
	engine := services.NewSimilarityEngine(
		verseRepo,
		verseResolver,
		embeddingResolver,
		cfg.SimilarityThreshold,
		cfg.EmbedWorkers,
		cfg.ResolveTimeout,
	)

	// Create API group with prefix
	api := e.Group(cfg.APIPrefix)

	// Register handlers
	healthHandler := handlers.NewHealthHandler()
	healthHandler.RegisterRoutes(api)

	verseHandler := handlers.NewVerseHandler(verseResolver, engine, cfg)
	verseHandler.RegisterRoutes(api)

	// Root health check
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"name":    cfg.APITitle,
			"version": cfg.APIVersion,
			"status":  "running",
		})
	})

	// Start server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Starting %s v%s on %s", cfg.APITitle, cfg.APIVersion, addr)
		if err := e.Start(addr); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	if err := db.ClosePostgres(); err != nil {
		log.Printf("Error closing PostgreSQL: %v", err)
	}

	log.Println("Server stopped")
}
