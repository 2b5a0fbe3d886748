package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"

	"github.com/AweFilko/PIB-SQL-injection/config"
	"github.com/AweFilko/PIB-SQL-injection/internal/application"
	"github.com/AweFilko/PIB-SQL-injection/internal/container"
	"github.com/AweFilko/PIB-SQL-injection/internal/domain/repository"
	"github.com/AweFilko/PIB-SQL-injection/internal/infrastructure/postgres"
	"github.com/AweFilko/PIB-SQL-injection/pkg/helpers"
	"github.com/AweFilko/PIB-SQL-injection/pkg/validation"
)

// InitBackend fills the container with everything the backend service
// needs: postgres pool (migrated), redis, sessions, cookie manager, and
// the query variant selected by QUERY_MODE. The returned cleanup closes
// the connections.
func InitBackend(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (func(), error) {
	pool, err := postgres.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife, cfg.Interpolated())
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := runMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		pool.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	signer := helpers.NewSessionSigner(cfg.SessionSecret, cfg.SessionTTL)
	sessions := application.NewRedisSessions(signer, rdb, logger)

	var store repository.Store
	policy := validation.Strict()
	if cfg.Interpolated() {
		store = postgres.NewInterpolatedStore(pool)
		policy = validation.Permissive()
	} else {
		store = postgres.NewBoundStore(pool)
	}
	logger.WithField("mode", cfg.QueryMode).Info("query construction strategy selected")

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetPGPool(pool)
	container.SetRedis(rdb)
	container.SetStore(store)
	container.SetPolicy(policy)
	container.SetSessions(sessions)
	container.SetCookies(helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure))

	return func() {
		_ = rdb.Close()
		pool.Close()
	}, nil
}

// InitRelay fills the container for the relay service. The audit
// publisher is strictly optional: an unreachable broker downgrades to a
// warning and the relay runs without the audit trail.
func InitRelay(cfg *config.Config, logger *logrus.Logger) func() {
	container.SetConfig(cfg)
	container.SetLogger(logger)

	if cfg.AuditPublishing {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.AuditQueue)
		if err != nil {
			logger.WithError(err).Warn("audit publisher unavailable; continuing without audit trail")
		} else {
			container.SetAuditPub(pub)
		}
	}
	return func() {
		container.GetAuditPub().Close()
	}
}

func runMigrations(dsn, migrationsDir string, logger *logrus.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsDir), "postgres", driver)
	if err != nil {
		return err
	}
	logger.Info("running migrations...")
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to run")
		return nil
	}
	return err
}
