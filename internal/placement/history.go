// Package placement keeps the history of placement-readiness analyses.
package placement

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/khrees2412/careerkit/internal/database"
	"github.com/khrees2412/careerkit/internal/readiness"
	"github.com/khrees2412/careerkit/pkg/models"
	"github.com/sirupsen/logrus"
)

// HistoryKey is where analyses are stored, newest first
const HistoryKey = "analysisHistory"

// ErrAnalysisNotFound is returned for unknown analysis ids
var ErrAnalysisNotFound = errors.New("analysis not found")

// History is the list of saved analyses
type History struct {
	store database.KeyValueStore
	log   logrus.FieldLogger
}

// NewHistory creates a History
func NewHistory(store database.KeyValueStore, log logrus.FieldLogger) *History {
	return &History{store: store, log: log}
}

// List returns every analysis, newest first. Records written by older
// versions are migrated and the migrated list is saved back once.
func (h *History) List() ([]models.Analysis, error) {
	raw := database.Load(h.store, HistoryKey, []json.RawMessage{}, h.log)

	out := make([]models.Analysis, 0, len(raw))
	dirty := false
	for i, r := range raw {
		a, changed, err := readiness.Migrate(r)
		if err != nil {
			if h.log != nil {
				h.log.WithError(err).WithField("index", i).Warn("dropping unreadable analysis")
			}
			dirty = true
			continue
		}
		dirty = dirty || changed
		out = append(out, a)
	}

	if dirty {
		if err := h.save(out); err != nil {
			return nil, err
		}
		if h.log != nil {
			h.log.WithField("count", len(out)).Debug("migrated analysis history")
		}
	}
	return out, nil
}

// Get returns one analysis by id
func (h *History) Get(id string) (models.Analysis, error) {
	list, err := h.List()
	if err != nil {
		return models.Analysis{}, err
	}
	for _, a := range list {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Analysis{}, fmt.Errorf("%w: %s", ErrAnalysisNotFound, id)
}

// Add puts a new analysis at the front of the history
func (h *History) Add(a models.Analysis) error {
	list, err := h.List()
	if err != nil {
		return err
	}
	return h.save(append([]models.Analysis{a}, list...))
}

// Update replaces the stored analysis with the same id
func (h *History) Update(a models.Analysis) error {
	list, err := h.List()
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == a.ID {
			list[i] = a
			return h.save(list)
		}
	}
	return fmt.Errorf("%w: %s", ErrAnalysisNotFound, a.ID)
}

// Latest returns the most recent analysis, if any
func (h *History) Latest() (models.Analysis, bool, error) {
	list, err := h.List()
	if err != nil || len(list) == 0 {
		return models.Analysis{}, false, err
	}
	return list[0], true, nil
}

func (h *History) save(list []models.Analysis) error {
	if err := database.Save(h.store, HistoryKey, list); err != nil {
		return fmt.Errorf("failed to save analysis history: %w", err)
	}
	return nil
}
