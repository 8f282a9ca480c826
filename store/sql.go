// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect selects the SQL driver and placeholder style.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// SQLStore keeps counters in a single `counter` table.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
	getSQL  string
	incrSQL string
}

// OpenSQL opens a PostgreSQL or SQLite database, pings it and creates the schema.
func OpenSQL(ctx context.Context, dialect Dialect, url string) (*SQLStore, error) {
	var dsn string
	switch dialect {
	case DialectPostgres:
		dsn = url
	case DialectSQLite:
		dsn = sqliteDSN(url)
	default:
		return nil, fmt.Errorf("%q: %w", dialect, ErrUnknownType)
	}

	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect, err)
	}
	if dialect == DialectSQLite {
		// One writer at a time; the upsert stays atomic and the pool never sees SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}

	s, err := NewSQLStore(ctx, db, dialect)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLStore wraps an open connection. The schema is created if missing.
func NewSQLStore(ctx context.Context, db *sql.DB, dialect Dialect) (*SQLStore, error) {
	if err := CreateSchema(ctx, db); err != nil {
		return nil, err
	}

	s := &SQLStore{
		db:      db,
		dialect: dialect,
		getSQL:  `SELECT value FROM counter WHERE name = $1`,
		incrSQL: `
			INSERT INTO counter (name, value) VALUES ($1, 1)
			ON CONFLICT (name) DO UPDATE SET value = counter.value + 1
			RETURNING value`,
	}
	if dialect == DialectSQLite {
		s.getSQL = strings.ReplaceAll(s.getSQL, "$1", "?")
		s.incrSQL = strings.ReplaceAll(s.incrSQL, "$1", "?")
	}
	return s, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (int64, bool, error) {
	var v int64
	err := s.db.QueryRowContext(ctx, s.getSQL, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get %s: %w", key, err)
	}
	return v, true, nil
}

// Incr relies on a single upsert statement, so the increment is atomic
// in both PostgreSQL and SQLite without an explicit transaction.
func (s *SQLStore) Incr(ctx context.Context, key string) (int64, error) {
	var v int64
	if err := s.db.QueryRowContext(ctx, s.incrSQL, key).Scan(&v); err != nil {
		return 0, fmt.Errorf("incr %s: %w", key, err)
	}
	return v, nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// sqliteDSN appends the pragmas the store depends on to a file path or URI.
func sqliteDSN(url string) string {
	pragmas := "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	if url == ":memory:" {
		return url
	}
	if strings.Contains(url, "?") {
		return url + "&" + pragmas
	}
	return url + "?" + pragmas
}
