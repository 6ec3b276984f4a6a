package main

import (
	"context"
	"fmt"
	"log"
	"time"

	_ "github.com/jpalmeida/household-scanner-service/docs"
	"github.com/jpalmeida/household-scanner-service/internal/barcode"
	"github.com/jpalmeida/household-scanner-service/internal/config"
	"github.com/jpalmeida/household-scanner-service/internal/database"
	"github.com/jpalmeida/household-scanner-service/internal/handler"
	"github.com/jpalmeida/household-scanner-service/internal/ocr"
	"github.com/jpalmeida/household-scanner-service/internal/product"
	"github.com/jpalmeida/household-scanner-service/internal/scan"
	"github.com/jpalmeida/household-scanner-service/internal/server"
	"github.com/jpalmeida/household-scanner-service/internal/service"
)

// @title Household Scanner Service API
// @version 1.0
// @description Receipt recognition, barcode decoding and product resolution for household operations.
// @BasePath /
func main() {
	// Load configuration
	log.Println("Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Pick the product store: PostgreSQL when configured, in-memory otherwise
	var store product.LocalStore
	if cfg.DatabaseURL != "" {
		log.Println("Connecting to PostgreSQL...")
		db, err := database.NewPostgresDB(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		store = product.NewPostgresStore(db.GetPool())
	} else {
		log.Println("Using in-memory product store")
		store = product.NewMemoryStore()
	}

	// Product resolver with remote catalog fallback
	catalog := product.NewCatalogClient(cfg.ProductCatalogURL, 10*time.Second)
	resolver := product.NewResolver(store, catalog)

	// Recognition pipeline
	log.Println("Creating recognition pipeline...")
	engine := ocr.NewTesseractEngine()
	orchestrator := scan.NewOrchestrator(engine, cfg.OCRLanguages, cfg.MaxDimension)
	decoder := barcode.NewDecoder()

	scanService := service.NewScanService(orchestrator, decoder, resolver, cfg.MaxWorkers)

	// Create handlers
	scanHandler := handler.NewScanHandler(scanService)
	productHandler := handler.NewProductHandler(scanService)

	// Create and configure server
	log.Println("Configuring server...")
	appServer := server.NewServer(cfg, scanHandler, productHandler)

	// Start server (blocking call)
	log.Printf("Starting server on port %d...", cfg.Port)
	if err := appServer.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	fmt.Println("Server shutdown complete")
}
