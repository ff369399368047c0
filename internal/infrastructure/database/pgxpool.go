package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"ticketdesk/internal/shared/config"
	"ticketdesk/internal/shared/logger"
)

// OpenPool creates a pgx connection pool for the postgres driver.
func OpenPool(ctx context.Context, cfg *config.DatabaseConfig, log logger.Interface) (*pgxpool.Pool, error) {
	if cfg.Driver != config.DriverPostgres {
		return nil, fmt.Errorf("pgx pool requires driver %q, got %q", config.DriverPostgres, cfg.Driver)
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 && int32(cfg.MaxIdleConns) <= poolCfg.MaxConns {
		poolCfg.MinConns = int32(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = time.Duration(cfg.ConnMaxLifetime) * time.Minute
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Infow("pgx pool established",
		"database", cfg.Database,
		"max_conns", poolCfg.MaxConns,
	)

	return pool, nil
}
