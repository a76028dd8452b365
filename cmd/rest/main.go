package main

import (
	"context"
	"log"

	"gourmet-bot-be/internal/bootstrap"
	"gourmet-bot-be/internal/config"
	"gourmet-bot-be/internal/server"
	"gourmet-bot-be/internal/tracer"
	"gourmet-bot-be/pkg/database"
)

func main() {
	// Initialize OpenTelemetry Tracer
	shutdownTracer := tracer.InitTracer()
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Error shutting down tracer provider: %v", err)
		}
	}()

	// Load Configuration
	cfg := config.Load()

	// Initialize Database
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("failed to initialize database: %v", err)
	}

	// Build Dependency Container
	container := bootstrap.NewContainer(db, cfg)
	defer container.NatsPublisher.Close()
	defer func() { _ = container.Logger.Sync() }()

	// Start HTTP Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
