package main

import (
	"errors"
	"flag"

	"finboard-backend/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

func main() {
	var migrationsPath string
	var down bool

	flag.StringVar(&migrationsPath, "migrations-path", "./migrations", "path to migrations")
	flag.BoolVar(&down, "down", false, "roll the last migration back instead of applying")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load")
	}
	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	m, err := migrate.New("file://"+migrationsPath, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("migrator init")
	}

	if down {
		err = m.Steps(-1)
	} else {
		err = m.Up()
	}
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("no migrations to apply")
			return
		}
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Msg("migrations applied successfully")
}
