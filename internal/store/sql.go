// internal/store/sql.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS kv (
    profile TEXT NOT NULL,
    name TEXT NOT NULL,
    data TEXT NOT NULL,
    updated_at INTEGER NOT NULL,
    PRIMARY KEY (profile, name)
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS kv (
    profile TEXT NOT NULL,
    name TEXT NOT NULL,
    data TEXT NOT NULL,
    updated_at BIGINT NOT NULL,
    PRIMARY KEY (profile, name)
);
`

// SQLStore is a KV backed by SQLite or Postgres through database/sql.
type SQLStore struct {
	db     *sql.DB
	driver Driver
}

// Compile-time check: *SQLStore satisfies the KV interface.
var _ KV = (*SQLStore)(nil)

// Open connects to the database and ensures the schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*SQLStore, error) {
	var drvName, schema string
	switch driver {
	case DriverSQLite:
		drvName, schema = "sqlite", schemaSQLite
		if dsn == "" {
			dsn = "uvquiz.db"
		}
	case DriverPostgres:
		drvName, schema = "pgx", schemaPostgres
		if dsn == "" {
			dsn = "postgres://localhost:5432/uvquiz?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("store: unsupported driver %q", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// SQLite allows a single writer.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	return &SQLStore{db: db, driver: driver}, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) Get(ctx context.Context, profile, key string) ([]byte, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		s.rebind("SELECT data FROM kv WHERE profile = ? AND name = ?"),
		profile, key,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(data), nil
}

func (s *SQLStore) Put(ctx context.Context, profile, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO kv (profile, name, data, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (profile, name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`), profile, key, string(value), time.Now().UnixMilli())
	return err
}

func (s *SQLStore) Delete(ctx context.Context, profile, key string) error {
	_, err := s.db.ExecContext(ctx,
		s.rebind("DELETE FROM kv WHERE profile = ? AND name = ?"),
		profile, key,
	)
	return err
}

// rebind rewrites ? placeholders into $n for Postgres.
func (s *SQLStore) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
