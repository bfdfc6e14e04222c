// Command cleanup-records removes comment records that no counter references
// any more, e.g. after a counter or its owner was deleted. It is intended to
// be invoked by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error, 2 = bad flags.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/JanRezzonico/API-Dipendenze/internal/adapter/postgres"
	"github.com/JanRezzonico/API-Dipendenze/internal/adapter/postgres/record"
	"github.com/JanRezzonico/API-Dipendenze/internal/app"
	"github.com/JanRezzonico/API-Dipendenze/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so that deferred cleanup always runs.
func run(args []string) int {
	fs := flag.NewFlagSet("cleanup-records", flag.ContinueOnError)
	minAge := fs.Duration("min-age", time.Hour, "keep orphans younger than this")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("load config: %v", err)
		return 1
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		return 1
	}
	defer pool.Close()

	threshold := time.Now().Add(-*minAge)

	deleted, err := record.New(pool).DeleteOrphans(ctx, threshold)
	if err != nil {
		logger.Error("orphan cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		return 1
	}

	logger.Info("orphan cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
	return 0
}
