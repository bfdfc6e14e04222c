package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/JanRezzonico/API-Dipendenze/migrations"
)

// Migrate applies all pending migrations. With reset it first rolls every
// migration back, dropping all application tables and their data.
func Migrate(ctx context.Context, pool *pgxpool.Pool, reset bool, logger *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	if reset {
		results, err := provider.DownTo(ctx, 0)
		if err != nil {
			return fmt.Errorf("goose reset: %w", err)
		}
		logger.WarnContext(ctx, "database reset", slog.Int("migrations_rolled_back", len(results)))
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		logger.InfoContext(ctx, "migration applied",
			slog.String("source", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}

	return nil
}
