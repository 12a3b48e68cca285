package kv

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	"lockerroom/internal/adapters/storage"
)

// SQLiteStore implements Store on a single kv table. Keys are namespaced with
// an application prefix so several apps can share one database file.
type SQLiteStore struct {
	db        storage.SQLDB
	namespace string
}

// NewSQLiteStore creates a new SQLiteStore with the given namespace prefix.
func NewSQLiteStore(db storage.SQLDB, namespace string) *SQLiteStore {
	return &SQLiteStore{db: db, namespace: namespace}
}

func (s *SQLiteStore) fullKey(key string) string {
	return s.namespace + ":" + key
}

// Load reads and JSON-decodes the value at key.
// PRE: into is a pointer
// POST: Returns true and fills into on success; returns false and leaves
// into untouched on absence, read failure or decode failure
func (s *SQLiteStore) Load(ctx context.Context, key string, into any) bool {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, s.fullKey(key)).Scan(&raw)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		slog.Warn("kv_load_failed", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal([]byte(raw), into); err != nil {
		slog.Warn("kv_decode_failed", "key", key, "error", err)
		return false
	}
	return true
}

// Save JSON-encodes value and upserts it at key. Failures are logged and
// swallowed; the caller proceeds either way.
// PRE: value is JSON-encodable
// POST: Value is persisted, or a warning is logged
func (s *SQLiteStore) Save(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.Warn("kv_encode_failed", "key", key, "error", err)
		return
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		s.fullKey(key), string(raw))
	if err != nil {
		slog.Warn("kv_save_failed", "key", key, "error", err)
	}
}

// Has reports whether a value exists at key.
// PRE: key is non-empty
// POST: Returns true if a row is stored, false on absence or read failure
func (s *SQLiteStore) Has(ctx context.Context, key string) bool {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM kv WHERE key = ?`, s.fullKey(key)).Scan(&one)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		slog.Warn("kv_has_failed", "key", key, "error", err)
		return false
	}
	return true
}
