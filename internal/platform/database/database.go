// Package database opens the database/sql pool that the database probe checks.
//
// Two drivers are registered: "sqlite" (modernc.org/sqlite, pure Go, always
// available) and "sqlite3" (github.com/mattn/go-sqlite3, cgo builds only).
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/container-health/internal/platform/config"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// maxOpenConns caps the pool. The probe holds at most one connection at a
// time, so a small pool is enough.
const maxOpenConns = 2

// Open creates a connection pool for the configured driver and DSN.
//
// sql.Open does not connect; the first connection is made lazily by the probe.
// An unreachable database is therefore reported as unhealthy at runtime
// rather than failing startup.
func Open(cfg config.DatabaseProbeConfig, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if logger != nil {
		logger.Info("database pool opened",
			slog.String("driver", cfg.Driver),
			slog.String("dsn", cfg.DSN),
		)
	}

	return db, nil
}

// Ping verifies connectivity within timeout. Used at startup to log an early
// warning; failures are not fatal.
func Ping(ctx context.Context, db *sql.DB, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}
