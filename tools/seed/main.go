// Command seed loads the reference catalog and demo users into PostgreSQL.
// It reads the same database environment variables as the service, applies
// pending migrations and inserts the fixture. Existing ids are skipped.
//
// Usage:
//
//	go run ./tools/seed -fixture tools/seed/fixture.yaml
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/giannis84/starwars-favorites/internal/config"
	"github.com/giannis84/starwars-favorites/internal/database"
	"github.com/giannis84/starwars-favorites/internal/logging"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	fixturePath := flag.String("fixture", "tools/seed/fixture.yaml", "path to the YAML fixture")
	timeout := flag.Duration("timeout", time.Minute, "time allowed for the whole seeding run")
	flag.Parse()

	logger := logging.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.String(logging.ErrorKey, err.Error()))
		os.Exit(1)
	}

	fixture, err := database.LoadFixture(*fixturePath)
	if err != nil {
		logger.Error("failed to load fixture", slog.String(logging.ErrorKey, err.Error()))
		os.Exit(1)
	}

	db, err := database.Connect(cfg.PostgresConnString(), logger)
	if err != nil {
		logger.Error("failed to initialise database", slog.String(logging.ErrorKey, err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := database.Seed(ctx, db, fixture, bcrypt.DefaultCost); err != nil {
		logger.Error("seeding failed", slog.String(logging.ErrorKey, err.Error()))
		os.Exit(1)
	}

	logger.Info("seed complete",
		slog.String("fixture", *fixturePath),
		slog.Int("users", len(fixture.Users)),
		slog.Int("characters", len(fixture.Characters)),
		slog.Int("planets", len(fixture.Planets)),
	)
}
