// Command migrate applies the embedded database migrations and exits.
// It is meant to run before a deploy, e.g. as an init container.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/incident-desk/internal/adapter/postgres"
	"github.com/heartmarshall/incident-desk/internal/app"
	"github.com/heartmarshall/incident-desk/internal/config"
)

func main() {
	db, err := config.LoadDatabase()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(config.LogConfig{Level: "info", Format: "json"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := postgres.Migrate(ctx, db.DSN, logger); err != nil {
		logger.Error("migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("migrations up to date")
}
