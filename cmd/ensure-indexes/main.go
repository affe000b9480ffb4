package main

import (
	"context"
	"os"

	"github.com/persnickety/venues-ms-go/internal/config"
	"github.com/persnickety/venues-ms-go/internal/db"
	"github.com/persnickety/venues-ms-go/internal/logger"
	"github.com/persnickety/venues-ms-go/internal/migration"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	database, err := db.New(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	defer func(database *db.Database) {
		if err := database.Close(ctx); err != nil {
			logger.Warnf(ctx, "DB close error: %v", err)
		}
	}(database)

	if err := migration.EnsureIndexes(ctx, database.DB); err != nil {
		logger.Errorf(ctx, "❌  Index creation failed: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "✅  Indexes ensured successfully")
}
