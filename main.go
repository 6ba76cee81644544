package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/soc-nexus/backend/internal/config"
	"github.com/soc-nexus/backend/internal/server"
)

// @title SOC Nexus Backend API
// @version 1.0
// @description Semantic incident search with threat-pattern analysis and alarm notifications.
func main() {
	// .env는 로컬 개발 편의용, 없어도 무방
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	router, cleanup, err := server.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to build server: %v", err)
	}
	defer cleanup()

	log.Printf("Starting SOC Nexus backend on :%s (env=%s)", cfg.Server.Port, cfg.Server.Environment)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
