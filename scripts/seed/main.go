// Standalone seeder: populates the configured database with sample
// sleep records without starting the API server.
package main

import (
	"github.com/somnolog/somnolog/internal/config"
	"github.com/somnolog/somnolog/internal/seed"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := seed.Run(db, logger); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}

	logger.Info("done")
}
