package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// pingTimeout bounds the startup connectivity check.
const pingTimeout = 5 * time.Second

// PoolSettings carries the pool tunables exposed through configuration.
// Zero values keep the pgx defaults.
type PoolSettings struct {
	MaxConns        int32
	MaxConnLifetime time.Duration
}

// NewPgxPool creates a PostgreSQL connection pool, applies the configured
// tunables and verifies connectivity before returning it.
func NewPgxPool(ctx context.Context, databaseURL string, settings PoolSettings) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}
	if settings.MaxConns > 0 {
		poolCfg.MaxConns = settings.MaxConns
	}
	if settings.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = settings.MaxConnLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to PostgreSQL database.")
	return pool, nil
}

// ClosePgxPool closes the PostgreSQL connection pool.
func ClosePgxPool(pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
		log.Println("PostgreSQL connection pool closed.")
	}
}
