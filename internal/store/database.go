// Package store persists exported stat tables to PostgreSQL in long
// format, one row per (dataset, season, entity, stat) cell, so the
// relational schema survives parsing-scheme changes.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/fortuna/athena/internal/frame"
)

// Database wraps the PostgreSQL connection used for export persistence.
type Database struct {
	conn *sql.DB
	dsn  string
}

// NewDatabase opens a pooled connection and verifies it.
func NewDatabase(dsn string) (*Database, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{conn: db, dsn: dsn}, nil
}

// Close closes the database connection.
func (db *Database) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// DB returns the underlying *sql.DB for queries.
func (db *Database) DB() *sql.DB {
	return db.conn
}

// HealthCheck pings the database with a short deadline.
func (db *Database) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return db.conn.PingContext(ctx)
}

// migrations are applied in order and tracked so re-runs are no-ops.
var migrations = []struct {
	version string
	stmt    string
}{
	{
		version: "001_create_stat_exports",
		stmt: `
			CREATE TABLE IF NOT EXISTS stat_exports (
				id BIGSERIAL PRIMARY KEY,
				dataset TEXT NOT NULL,
				season TEXT NOT NULL,
				entity_key TEXT NOT NULL,
				stat TEXT NOT NULL,
				value TEXT,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (dataset, season, entity_key, stat)
			)
		`,
	},
	{
		version: "002_index_stat_exports_lookup",
		stmt: `
			CREATE INDEX IF NOT EXISTS idx_stat_exports_lookup
			ON stat_exports (dataset, season, entity_key)
		`,
	},
}

// RunMigrations applies any unapplied migrations.
func (db *Database) RunMigrations() error {
	log.Println("Running database migrations...")

	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, m := range migrations {
		if err := db.runMigration(m.version, m.stmt); err != nil {
			return fmt.Errorf("failed to run migration %s: %w", m.version, err)
		}
	}

	log.Println("✓ All migrations completed successfully")
	return nil
}

func (db *Database) runMigration(version, stmt string) error {
	var exists bool
	err := db.conn.QueryRow("SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)", version).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(stmt); err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES ($1)", version); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	log.Printf("  ✓ Applied %s", version)
	return nil
}

// SaveFrame upserts every cell of an exported frame under a dataset and
// season label, inside one transaction.
func (db *Database) SaveFrame(ctx context.Context, dataset, season string, f *frame.Frame) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning export transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO stat_exports (dataset, season, entity_key, stat, value, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (dataset, season, entity_key, stat)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`)
	if err != nil {
		return fmt.Errorf("preparing export statement: %w", err)
	}
	defer stmt.Close()

	keys := f.Index()
	columns := f.Columns()
	for i, key := range keys {
		row := f.Row(i)
		for _, col := range columns {
			if _, err := stmt.ExecContext(ctx, dataset, season, key, col, cellValue(row[col])); err != nil {
				return fmt.Errorf("upserting %s/%s: %w", key, col, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing export: %w", err)
	}

	log.Printf("[store] saved %d rows x %d stats for %s %s", len(keys), len(columns), dataset, season)
	return nil
}

func cellValue(v interface{}) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: fmt.Sprint(v), Valid: true}
}
