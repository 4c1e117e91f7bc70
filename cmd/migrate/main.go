package main

import (
	"github.com/rs/zerolog/log"

	"github.com/arqsuite/arqsuite-api/internal/config"
	"github.com/arqsuite/arqsuite-api/internal/pkg/database"
	"github.com/arqsuite/arqsuite-api/migrations"
)

func main() {
	cfg := config.Load()

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	if err := database.Migrate(db, migrations.FS); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}

	log.Info().Msg("Migrations up to date")
}
