package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type Config struct {
	DSN         string
	DialTimeout time.Duration
}

// DriverFor picks the sql driver from the DSN shape: postgres URLs go through
// pgx, everything else (file paths, :memory:) through sqlite.
func DriverFor(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx"
	}
	return "sqlite"
}

// Open connects the review store and applies the schema.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*sql.DB, string, error) {
	driver := DriverFor(cfg.DSN)
	logger.Info("connecting to review store", "driver", driver)

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		logger.Error("failed to open review store", "error", err)
		return nil, "", err
	}

	pingCtx := ctx
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		logger.Error("review store ping failed", "error", err)
		return nil, "", err
	}

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("migrate review store: %w", err)
	}

	logger.Info("review store ready")
	return db, driver, nil
}

// Close closes the store gracefully.
func Close(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("failed to close review store", "error", err)
	}
}

// migrate applies the single-table schema. Timestamps are stored as RFC3339
// text so the same DDL serves both drivers.
func migrate(ctx context.Context, db *sql.DB) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS receipts (
	id             TEXT PRIMARY KEY,
	file_name      TEXT NOT NULL DEFAULT '',
	tx_date        TEXT NOT NULL DEFAULT 'N/A',
	vendor         TEXT NOT NULL DEFAULT 'Unknown',
	amount         REAL NOT NULL DEFAULT 0,
	description    TEXT NOT NULL DEFAULT '',
	category       TEXT NOT NULL DEFAULT 'Other',
	order_id       TEXT NOT NULL DEFAULT '',
	payment_method TEXT NOT NULL DEFAULT '',
	raw_text       TEXT NOT NULL DEFAULT '',
	created_at     TEXT NOT NULL,
	updated_at     TEXT NOT NULL
)`
	_, err := db.ExecContext(ctx, ddl)
	return err
}
