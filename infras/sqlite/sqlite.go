// Package sqlite owns the single connection to the on-device embedded
// database. Every other package borrows the connection through [Handle.Conn]
// and never caches it across a close/reopen boundary.
package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/rs/zerolog/log"

	"innsync/config"
	"innsync/shared/failure"
)

// Handle wraps the app's one SQLite database file. Construct it once at
// startup with New and inject it; the handle is safe for concurrent use.
type Handle struct {
	mu        sync.Mutex
	path      string
	db        *sqlx.DB
	connected bool
}

func New(cfg *config.Config) *Handle {
	return &Handle{path: cfg.DB.SQLite.Path}
}

// NewAt creates a handle for an explicit database path. Used by tests to get
// a fresh store per test directory.
func NewAt(path string) *Handle {
	return &Handle{path: path}
}

// Open establishes the connection if it does not exist yet. Idempotent:
// concurrent callers share the one physical connection, the mutex makes the
// check-then-open atomic.
func (h *Handle) Open() (*sqlx.DB, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.openLocked()
}

func (h *Handle) openLocked() (*sqlx.DB, error) {
	if h.db != nil {
		return h.db, nil
	}

	if dir := filepath.Dir(h.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", h.path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database %q: %w", h.path, err)
	}

	// Single writer to avoid SQLITE_BUSY under WAL.
	db.SetMaxOpenConns(1)

	h.db = db
	h.connected = true

	log.Info().Str("path", h.path).Msg("Connected to local database")

	return h.db, nil
}

// Close closes the underlying connection if connected. Close errors are
// logged, never returned, and the handle always resets to disconnected so a
// later Open or Conn can establish a fresh connection.
func (h *Handle) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db != nil {
		if err := h.db.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing the local database")
		}
	}

	h.db = nil
	h.connected = false
}

// Conn returns the live connection, transparently reopening once if the
// handle is disconnected. Failures surface as a store-unavailable Failure so
// callers can report "offline data unavailable" instead of crashing.
func (h *Handle) Conn() (*sqlx.DB, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.connected {
		log.Info().Msg("Local database not connected, attempting to reconnect")

		if _, err := h.openLocked(); err != nil {
			return nil, failure.StoreUnavailable(fmt.Errorf("unable to reconnect to the database: %w", err)) //nolint:wrapcheck
		}
	}

	if h.db == nil {
		return nil, failure.StoreUnavailable(fmt.Errorf("database connection is not established")) //nolint:wrapcheck
	}

	return h.db, nil
}

// WithTx runs fn inside a transaction on the current connection, rolling back
// on error. Multi-row writes go through here so partial writes are never
// visible.
func (h *Handle) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	db, err := h.Conn()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("Failed to roll back transaction")
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
