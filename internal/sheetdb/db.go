// Package sheetdb stores the Books and Sentences collections of the local
// backend in sqlite.
package sheetdb // import "github.com/herhimstory-source/Reading-Log/internal/sheetdb"

import (
	"context"
	"database/sql"
	_ "embed"

	"github.com/herhimstory-source/Reading-Log/internal/log"
	"github.com/herhimstory-source/Reading-Log/internal/version"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

//go:embed migration/schema.sql
var schema string

type DB struct {
	*sql.DB
}

// Open opens the sqlite database at dsn. Migrate must be called before use.
func Open(dsn string) (*DB, error) {
	if dsn == "" {
		return nil, errors.New("Database URL is required")
	}
	d, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// sqlite allows one writer; a single connection also keeps :memory: shared.
	d.SetMaxOpenConns(1)
	if _, err := d.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		d.Close()
		return nil, errors.Wrap(err, "failed to configure database")
	}
	return &DB{d}, nil
}

func (d *DB) Close() error {
	return d.DB.Close()
}

// Migrate applies the schema when the database is new and records the
// running version in migration_history.
func (d *DB) Migrate(ctx context.Context) error {
	exists, err := d.CheckTableExists(ctx, "migration_history")
	if err != nil {
		return errors.Wrap(err, "failed to check migration history")
	}
	if !exists {
		if _, err := d.ExecContext(ctx, schema); err != nil {
			return errors.Wrap(err, "failed to apply latest schema")
		}
		log.Info("Applied database schema")
	}

	current := version.GetCurrentVersion()
	if _, err := d.UpsertMigrationHistory(ctx, current); err != nil {
		return errors.Wrap(err, "failed to upsert migration history")
	}
	log.Debug("Database ready", zap.String("version", current))
	return nil
}
