// @title LearnTrack API
// @version 1.0
// @description Backend for the LearnTrack practice tracking and risk analysis service.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"learn_track_backend/internal/app"
	"learn_track_backend/internal/config"
	"learn_track_backend/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
