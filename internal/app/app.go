package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/JanRezzonico/API-Dipendenze/internal/adapter/postgres"
	counterrepo "github.com/JanRezzonico/API-Dipendenze/internal/adapter/postgres/counter"
	recordrepo "github.com/JanRezzonico/API-Dipendenze/internal/adapter/postgres/record"
	pgrevocation "github.com/JanRezzonico/API-Dipendenze/internal/adapter/postgres/revocation"
	userrepo "github.com/JanRezzonico/API-Dipendenze/internal/adapter/postgres/user"
	"github.com/JanRezzonico/API-Dipendenze/internal/adapter/redis"
	redisrevocation "github.com/JanRezzonico/API-Dipendenze/internal/adapter/redis/revocation"
	"github.com/JanRezzonico/API-Dipendenze/internal/auth"
	"github.com/JanRezzonico/API-Dipendenze/internal/config"
	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
	authsvc "github.com/JanRezzonico/API-Dipendenze/internal/service/auth"
	countersvc "github.com/JanRezzonico/API-Dipendenze/internal/service/counter"
	recordsvc "github.com/JanRezzonico/API-Dipendenze/internal/service/record"
	usersvc "github.com/JanRezzonico/API-Dipendenze/internal/service/user"
	"github.com/JanRezzonico/API-Dipendenze/internal/transport/middleware"
	"github.com/JanRezzonico/API-Dipendenze/internal/transport/rest"
)

// revocationStore is the revocation list backend shared by the auth service.
type revocationStore interface {
	Add(ctx context.Context, tokenHash string) error
	Contains(ctx context.Context, tokenHash string) (bool, error)
}

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("revocation_backend", cfg.Revocation.Backend),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, cfg.Database.Reset, logger); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	components := map[string]rest.Pinger{"database": rest.PingFunc(pool.Ping)}

	revoked, closeRevocation, err := newRevocationStore(ctx, cfg, pool, components)
	if err != nil {
		return err
	}
	defer closeRevocation()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      newHandler(cfg, logger, pool, revoked, components),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// newRevocationStore opens the configured revocation backend and registers it
// with the health components when it is an extra dependency.
func newRevocationStore(
	ctx context.Context,
	cfg *config.Config,
	pool *pgxpool.Pool,
	components map[string]rest.Pinger,
) (revocationStore, func(), error) {
	if cfg.Revocation.Backend != config.RevocationBackendRedis {
		return pgrevocation.New(pool), func() {}, nil
	}

	client, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}
	components["redis"] = rest.PingFunc(func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})

	return redisrevocation.New(client, cfg.Redis.KeyPrefix), func() { _ = client.Close() }, nil
}

func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	revoked revocationStore,
	components map[string]rest.Pinger,
) http.Handler {
	users := userrepo.New(pool)
	counters := counterrepo.New(pool)
	records := recordrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	authService := authsvc.NewService(logger, users, revoked, tokens, hasher)
	userService := usersvc.NewService(logger, users, hasher)
	counterService := countersvc.NewService(logger, counters, records)
	recordService := recordsvc.NewService(logger, records, counters, txm)

	return rest.NewRouter(rest.RouterDeps{
		Users:    rest.NewUserHandler(authService, userService, logger),
		Counters: rest.NewCounterHandler(counterService, logger),
		Diary:    rest.NewRecordHandler(recordService, domain.RecordKindDiary, logger),
		Resets:   rest.NewRecordHandler(recordService, domain.RecordKindReset, logger),
		Health:   rest.NewHealthHandler(components, BuildVersion()),
		Auth:     middleware.Auth(authService, logger),
		Logger:   logger,
		CORS:     cfg.CORS,
		MaxBody:  cfg.Server.MaxBodyBytes,
	})
}
