package main

import (
	"dockhub/config"
	"dockhub/di"
	"dockhub/helper"
	"dockhub/shared/logger"

	"github.com/rs/zerolog/log"

	_ "dockhub/docs"
)

// @title Dockhub API
// @version 1.0
// @description Warehouse dock check-in and scheduling.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	app := di.InitializeService()

	if err := app.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped with error")
	}
}
