package storage

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// SQLDB is the database interface used by all stores.
// Both *sql.DB and *TimedDB satisfy this interface.
type SQLDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Compile-time check that *sql.DB satisfies SQLDB.
var _ SQLDB = (*sql.DB)(nil)

// DefaultSlowQueryMs is the default threshold for slow query warnings.
const DefaultSlowQueryMs = 50

// TimedDB wraps a *sql.DB and logs queries that exceed the slow-query
// threshold. Satisfies SQLDB so it can be passed to any store constructor.
type TimedDB struct {
	db        *sql.DB
	threshold time.Duration
}

// Compile-time check that *TimedDB satisfies SQLDB.
var _ SQLDB = (*TimedDB)(nil)

// NewTimedDB wraps a *sql.DB with slow-query logging. The threshold comes
// from LOCKERROOM_SLOW_QUERY_MS, falling back to DefaultSlowQueryMs.
// PRE: db is a valid database connection
// POST: Returns a TimedDB that warns on slow queries
func NewTimedDB(db *sql.DB) *TimedDB {
	ms := DefaultSlowQueryMs
	if v := os.Getenv("LOCKERROOM_SLOW_QUERY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ms = n
		}
	}
	return &TimedDB{db: db, threshold: time.Duration(ms) * time.Millisecond}
}

// RawDB returns the underlying *sql.DB (needed for migrations and pool config).
func (t *TimedDB) RawDB() *sql.DB {
	return t.db
}

func (t *TimedDB) observe(op, query string, start time.Time) {
	elapsed := time.Since(start)
	if elapsed >= t.threshold {
		slog.Warn("slow_query", "op", op, "query", query, "elapsed_ms", elapsed.Milliseconds())
	}
}

// ExecContext runs a statement with slow-query logging.
func (t *TimedDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	defer t.observe("exec", query, start)
	return t.db.ExecContext(ctx, query, args...)
}

// QueryContext runs a query with slow-query logging.
func (t *TimedDB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	defer t.observe("query", query, start)
	return t.db.QueryContext(ctx, query, args...)
}

// QueryRowContext runs a single-row query with slow-query logging.
func (t *TimedDB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	start := time.Now()
	defer t.observe("query_row", query, start)
	return t.db.QueryRowContext(ctx, query, args...)
}
