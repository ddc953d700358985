package database

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Load decodes the JSON value stored under key into a T. An absent key yields
// def. A value that cannot be decoded is logged, removed from the store and
// replaced by def; it is never returned as an error.
func Load[T any](s KeyValueStore, key string, def T, log logrus.FieldLogger) T {
	raw, ok, err := s.Get(key)
	if err != nil {
		if log != nil {
			log.WithError(err).WithField("key", key).Warn("failed to read stored value")
		}
		return def
	}
	if !ok {
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		if log != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"namespace": namespaceOf(s),
				"key":       key,
			}).Warn("discarding malformed stored value")
		}
		if derr := s.Delete(key); derr != nil && log != nil {
			log.WithError(derr).WithField("key", key).Warn("failed to clear malformed value")
		}
		return def
	}
	return v
}

// Save encodes v as JSON and writes it under key
func Save(s KeyValueStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(key, raw)
}

func namespaceOf(s KeyValueStore) string {
	if named, ok := s.(interface{ Name() string }); ok {
		return named.Name()
	}
	return ""
}
