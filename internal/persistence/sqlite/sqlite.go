// Package sqlite implements the persistence repositories on top of the
// pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Donovan7777/hotel/internal/persistence"
	_ "modernc.org/sqlite"
)

// timeLayout is the civil wall-clock form reservations are stored in.
// No offset is ever persisted.
const timeLayout = "2006-01-02T15:04:05"

const schema = `
CREATE TABLE IF NOT EXISTS room_types (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL UNIQUE,
	floor_price   REAL NOT NULL,
	ceiling_price TEXT,
	description   TEXT
);

CREATE TABLE IF NOT EXISTS rooms (
	id           TEXT PRIMARY KEY,
	number       INTEGER NOT NULL,
	available    INTEGER NOT NULL,
	notes        TEXT,
	room_type_id TEXT REFERENCES room_types(id)
);

CREATE TABLE IF NOT EXISTS occupants (
	id         TEXT PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name  TEXT NOT NULL,
	address    TEXT NOT NULL,
	mobile     TEXT NOT NULL,
	credential TEXT NOT NULL,
	category   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS reservations (
	id            TEXT PRIMARY KEY,
	start_at      TEXT NOT NULL,
	end_at        TEXT NOT NULL,
	price_per_day REAL NOT NULL,
	note          TEXT,
	occupant_id   TEXT NOT NULL REFERENCES occupants(id),
	room_id       TEXT NOT NULL REFERENCES rooms(id)
);

CREATE INDEX IF NOT EXISTS idx_reservations_start ON reservations(start_at);
CREATE INDEX IF NOT EXISTS idx_rooms_room_type ON rooms(room_type_id);
`

// Store owns the database handle and implements every persistence
// repository interface plus persistence.TxRunner.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database named by dsn. Foreign key
// enforcement must be requested through the DSN, for example
// "file:hotel.db?_pragma=foreign_keys(1)".
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// SQLite allows a single writer; a pool of one connection avoids
	// SQLITE_BUSY under concurrent handlers and keeps :memory: databases
	// from being silently duplicated per connection.
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate creates the schema when it does not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

type txKey struct{}

// InTx runs fn inside a transaction. When the context already carries one,
// fn joins it and the outer caller stays responsible for the commit.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback after %w: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) q(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return s.db
}

// classify maps driver errors onto the persistence sentinel errors. Anything
// unrecognised is returned as-is so infrastructure failures stay visible.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return persistence.ErrNotFound
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %v", persistence.ErrForeignKeyViolation, err)
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %v", persistence.ErrDuplicate, err)
	}
	return err
}

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored timestamp %q: %w", value, err)
	}
	return t, nil
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func stringPtr(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	s := value.String
	return &s
}
