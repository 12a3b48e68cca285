package storage

import (
	"database/sql"
	"fmt"
)

// migrations is the ordered schema history. Index i migrates the database
// from version i to version i+1. Never edit an entry that has shipped; append
// a new one instead.
var migrations = []func(*sql.DB) error{
	migrateV1KVStore,
}

// LatestSchemaVersion returns the schema version this build expects.
func LatestSchemaVersion() int {
	return len(migrations)
}

// MigrateDB brings the database schema up to the latest version. Safe to run
// on every startup.
// PRE: db is a valid database connection
// POST: Schema is at LatestSchemaVersion; schema_version records it
func MigrateDB(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	version, err := SchemaVersion(db)
	if err != nil {
		return err
	}

	for v := version; v < len(migrations); v++ {
		if err := migrations[v](db); err != nil {
			return fmt.Errorf("migration to version %d failed: %w", v+1, err)
		}
		if err := setSchemaVersion(db, v+1); err != nil {
			return err
		}
	}
	return nil
}

// SchemaVersion returns the current schema version, zero for a fresh database.
func SchemaVersion(db *sql.DB) (int, error) {
	var version int
	err := db.QueryRow(`SELECT version FROM schema_version LIMIT 1`).Scan(&version)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

func setSchemaVersion(db *sql.DB, version int) error {
	if _, err := db.Exec(`DELETE FROM schema_version`); err != nil {
		return fmt.Errorf("failed to clear schema version: %w", err)
	}
	if _, err := db.Exec(`INSERT INTO schema_version (version) VALUES (?)`, version); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	return nil
}

// migrateV1KVStore creates the key-value table that backs every collection.
// Each collection is one row: the key names the collection, the value holds
// the whole JSON-encoded sequence.
func migrateV1KVStore(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	return err
}
