package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/jfletch/haul-analytics-go/internal/api"
	"github.com/jfletch/haul-analytics-go/internal/config"
	"github.com/jfletch/haul-analytics-go/internal/database"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}
	defer database.Close()

	router := api.SetupRouter(cfg, database.GetDB())

	log.WithField("port", cfg.Port).Info("Server starting")
	if err := router.Run(cfg.Port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
