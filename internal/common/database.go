package common

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arvind-krishnan/dealslip-tracker/gen/ent"
	"github.com/arvind-krishnan/dealslip-tracker/internal/repository"
)

// DBResult bundles the opened client with its cleanup.
type DBResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool
	Cleanup func()
}

// InitDatabase opens either an in-memory SQLite database (local batch runs)
// or the configured Postgres database, and creates the schema for SQLite.
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if inmem || cfg.Database.DSN == "" {
		client, err := repository.OpenSQLite("", logger)
		if err != nil {
			return nil, WrapError(err, "open sqlite")
		}
		if err := client.Schema.Create(ctx); err != nil {
			_ = client.Close()
			return nil, WrapError(err, "create sqlite schema")
		}
		logger.Info("using in-memory sqlite database")
		return &DBResult{
			Client:  client,
			Cleanup: func() { _ = client.Close() },
		}, nil
	}

	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, WrapError(err, "open postgres")
	}
	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		repository.Close(client, pool, logger)
		return nil, WrapError(err, "database health check")
	}
	return &DBResult{
		Client:  client,
		Pool:    pool,
		Cleanup: func() { repository.Close(client, pool, logger) },
	}, nil
}
