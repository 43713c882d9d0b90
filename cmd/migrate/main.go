package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"innsync/config"
	"innsync/infras/sqlite"
	"innsync/internal/schema"
	"innsync/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	store := sqlite.New(cfg)
	defer store.Close()

	if err := schema.Migrate(context.Background(), store); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}

	log.Info().Str("path", cfg.DB.SQLite.Path).Msg("Local schema is up to date")
}
