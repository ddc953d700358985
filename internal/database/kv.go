package database

import (
	"database/sql"
	"errors"
	"fmt"
)

// KeyValueStore is a string-keyed persistent store with change notifications
type KeyValueStore interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys(prefix string) ([]string, error)
	Subscribe(key string, fn Listener) (unsubscribe func())
}

// Store is one namespace of the database. Each app owns exactly one.
type Store struct {
	db        *DB
	namespace string
}

var _ KeyValueStore = (*Store)(nil)

// Namespace returns the store for the given namespace
func (d *DB) Namespace(name string) *Store {
	return &Store{db: d, namespace: name}
}

// Name returns the namespace this store writes to
func (s *Store) Name() string {
	return s.namespace
}

// Get returns the raw value stored under key. The bool is false when the key
// is absent.
func (s *Store) Get(key string) ([]byte, bool, error) {
	if s.db.isClosed() {
		return nil, false, ErrClosed
	}

	var value string
	err := s.db.sql.QueryRow(
		`SELECT value FROM kv WHERE namespace = ? AND key = ?`,
		s.namespace, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s/%s: %w", s.namespace, key, err)
	}
	return []byte(value), true, nil
}

// Set writes value under key, replacing any previous value, then notifies
// listeners of that key
func (s *Store) Set(key string, value []byte) error {
	if s.db.isClosed() {
		return ErrClosed
	}

	_, err := s.db.sql.Exec(`
		INSERT INTO kv (namespace, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(namespace, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		s.namespace, key, string(value),
	)
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", s.namespace, key, err)
	}

	s.db.notify(s.namespace, key, value)
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if s.db.isClosed() {
		return ErrClosed
	}

	res, err := s.db.sql.Exec(`DELETE FROM kv WHERE namespace = ? AND key = ?`, s.namespace, key)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", s.namespace, key, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.db.notify(s.namespace, key, nil)
	}
	return nil
}

// Keys lists the keys starting with prefix, sorted
func (s *Store) Keys(prefix string) ([]string, error) {
	if s.db.isClosed() {
		return nil, ErrClosed
	}

	rows, err := s.db.sql.Query(
		`SELECT key FROM kv WHERE namespace = ? AND substr(key, 1, ?) = ? ORDER BY key`,
		s.namespace, len(prefix), prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("list %s/%s*: %w", s.namespace, prefix, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Subscribe registers fn to be called after every write or delete of key in
// this namespace, from any Store handle sharing the same DB
func (s *Store) Subscribe(key string, fn Listener) func() {
	return s.db.subscribe(s.namespace, key, fn)
}

// Clear removes every key in the namespace
func (s *Store) Clear() error {
	keys, err := s.Keys("")
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := s.Delete(k); err != nil {
			return err
		}
	}
	return nil
}
