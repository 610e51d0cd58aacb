package main

import (
	"context"

	"finboard-backend/internal/config"
	"finboard-backend/internal/database"
	"finboard-backend/internal/seed"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load")
	}
	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database open")
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migrate")
	}

	if err := seed.Run(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Msg("Database seeding completed")
}
