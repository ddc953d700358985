package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// ErrClosed is returned when the database has already been closed
var ErrClosed = errors.New("database is closed")

// DB wraps the sqlite handle backing every namespace and the listeners
// registered against it
type DB struct {
	sql *sql.DB
	log logrus.FieldLogger

	mu        sync.Mutex
	closed    bool
	listeners map[listenerKey]map[int]Listener
	nextID    int
}

// Open creates the parent directory if needed, opens the SQLite database at
// path and runs migrations
func Open(path string, log logrus.FieldLogger) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", path)
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := RunMigrations(sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if log == nil {
		log = logrus.StandardLogger()
	}

	return &DB{
		sql:       sqlDB,
		log:       log,
		listeners: make(map[listenerKey]map[int]Listener),
	}, nil
}

// Close closes the database connection. Listeners are dropped.
func (d *DB) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	d.listeners = make(map[listenerKey]map[int]Listener)
	d.mu.Unlock()
	return d.sql.Close()
}

// RunMigrations creates all necessary tables
func RunMigrations(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		namespace TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (namespace, key)
	);

	CREATE INDEX IF NOT EXISTS idx_kv_updated_at ON kv(updated_at);
	`

	_, err := db.Exec(schema)
	return err
}

func (d *DB) isClosed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}
