// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/ling-4j/prosperpath/internal/apperrors"
	"github.com/ling-4j/prosperpath/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// dateLayout is how calendar dates (budget ranges) are stored.
const dateLayout = "2006-01-02"

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db  *sql.DB
	q   querier
	tx  bool
	loc *time.Location
	now func() time.Time
}

// Option configures a SQLiteStore.
type Option func(*SQLiteStore)

// WithLocation sets the timezone calendar dates are interpreted in.
// Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(s *SQLiteStore) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithClock overrides the time source used for CreatedAt/UpdatedAt defaults.
func WithClock(now func() time.Time) Option {
	return func(s *SQLiteStore) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string, opts ...Option) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Foreign keys and busy timeout are per-connection pragmas.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection serializes writers, which makes every InTx block
	// atomic with respect to concurrent requests on the same event.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewWithDB(db, opts...), nil
}

// NewWithDB wraps an already opened and migrated database.
func NewWithDB(db *sql.DB, opts ...Option) *SQLiteStore {
	s := &SQLiteStore{db: db, q: db, loc: time.UTC, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// InTx runs fn inside a single database transaction. Nested calls reuse the
// outer transaction.
func (s *SQLiteStore) InTx(ctx context.Context, fn func(storage.Ledger) error) error {
	if s.tx {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	txStore := &SQLiteStore{db: s.db, q: tx, tx: true, loc: s.loc, now: s.now}
	if err := fn(txStore); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// newID returns id, or a fresh UUID when id is empty.
func newID(id string) string {
	if id == "" {
		return uuid.New().String()
	}
	return id
}

// stamp returns t, or the store clock's current time when t is zero.
func (s *SQLiteStore) stamp(t time.Time) time.Time {
	if t.IsZero() {
		return s.now().UTC().Truncate(time.Second)
	}
	return t
}

func fromUnix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func (s *SQLiteStore) formatDate(t time.Time) string {
	return t.In(s.loc).Format(dateLayout)
}

func (s *SQLiteStore) parseDate(v string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, v, s.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored date %q: %w", v, err)
	}
	return t, nil
}

// nullable maps "" to SQL NULL.
func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}

// notFoundOr converts sql.ErrNoRows to an apperrors NotFound.
func notFoundOr(err error, entity, id, action string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound(entity, id)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// requireAffected returns NotFound when an UPDATE/DELETE touched no rows.
func requireAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperrors.NotFound(entity, id)
	}
	return nil
}

// placeholders returns "?, ?, ?" with n markers.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
