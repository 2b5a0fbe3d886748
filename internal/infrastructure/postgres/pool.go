package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func poolConfig(dsn string, maxConns, minConns int32, maxConnLife time.Duration, simpleProtocol bool) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = maxConns
	cfg.MinConns = minConns
	cfg.MaxConnLifetime = maxConnLife
	if simpleProtocol {
		// The extended protocol rejects multi-statement text. The
		// interpolated variant must be able to run stacked statements,
		// so its pool speaks the simple protocol.
		cfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	}
	return cfg, nil
}

// NewPool opens a pgx pool and verifies connectivity before returning it.
// simpleProtocol selects the wire mode for the interpolated variant.
func NewPool(ctx context.Context, dsn string, maxConns, minConns int32, maxConnLife time.Duration, simpleProtocol bool) (*pgxpool.Pool, error) {
	cfg, err := poolConfig(dsn, maxConns, minConns, maxConnLife, simpleProtocol)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
