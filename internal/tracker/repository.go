// Package tracker persists the job tracker's preferences, application
// statuses, saved jobs and daily digests.
package tracker

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/khrees2412/careerkit/internal/database"
	"github.com/khrees2412/careerkit/pkg/models"
	"github.com/sirupsen/logrus"
)

// Store keys
const (
	PreferencesKey   = "jobTrackerPreferences"
	StatusKey        = "jobTrackerStatus"
	StatusUpdatesKey = "jobTrackerStatusUpdates"
	SavedKey         = "jobTrackerSaved"
	DigestKeyPrefix  = "jobTrackerDigest_"
)

// MaxStatusUpdates is how many status changes the history keeps
const MaxStatusUpdates = 20

// ErrInvalidPreferences wraps preference validation failures
var ErrInvalidPreferences = errors.New("invalid preferences")

// Repository reads and writes tracker state in its store namespace
type Repository struct {
	store    database.KeyValueStore
	log      logrus.FieldLogger
	validate *validator.Validate

	mu    sync.Mutex
	prefs *models.Preferences
}

// NewRepository creates a Repository. Preferences are cached until the
// preferences key changes in the store.
func NewRepository(store database.KeyValueStore, log logrus.FieldLogger) *Repository {
	r := &Repository{store: store, log: log, validate: validator.New()}
	store.Subscribe(PreferencesKey, func(string, []byte) {
		r.mu.Lock()
		r.prefs = nil
		r.mu.Unlock()
	})
	return r
}

// Preferences returns the saved preferences or the defaults
func (r *Repository) Preferences() models.Preferences {
	r.mu.Lock()
	cached := r.prefs
	r.mu.Unlock()

	var p models.Preferences
	if cached != nil {
		p = *cached
	} else {
		// Load may delete a malformed value, which calls the listener
		p = database.Load(r.store, PreferencesKey, models.DefaultPreferences(), r.log)
		r.mu.Lock()
		r.prefs = &p
		r.mu.Unlock()
	}
	p.PreferredLocations = slices.Clone(p.PreferredLocations)
	p.PreferredMode = slices.Clone(p.PreferredMode)
	return p
}

// SetPreferences validates and saves preferences
func (r *Repository) SetPreferences(p models.Preferences) error {
	if err := r.validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %s", ErrInvalidPreferences, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidPreferences, err)
	}
	if p.PreferredLocations == nil {
		p.PreferredLocations = []string{}
	}
	if p.PreferredMode == nil {
		p.PreferredMode = []string{}
	}
	return database.Save(r.store, PreferencesKey, p)
}

// Statuses returns the status of every job that has one
func (r *Repository) Statuses() map[string]models.JobStatus {
	return database.Load(r.store, StatusKey, map[string]models.JobStatus{}, r.log)
}

// Status returns a job's status, Not Applied when unset
func (r *Repository) Status(jobID string) models.JobStatus {
	if st, ok := r.Statuses()[jobID]; ok {
		return st
	}
	return models.StatusNotApplied
}

// SetStatus records a job's status and prepends the change to the history.
// Setting the status a job already has changes nothing and returns false.
func (r *Repository) SetStatus(job models.Job, status models.JobStatus, now time.Time) (bool, error) {
	if !slices.Contains(models.JobStatuses, status) {
		return false, fmt.Errorf("unknown status %q", status)
	}
	if r.Status(job.ID) == status {
		return false, nil
	}

	statuses := r.Statuses()
	statuses[job.ID] = status
	if err := database.Save(r.store, StatusKey, statuses); err != nil {
		return false, fmt.Errorf("failed to save status: %w", err)
	}

	update := models.StatusUpdate{
		JobID:     job.ID,
		Title:     job.Title,
		Company:   job.Company,
		Status:    status,
		ChangedAt: now.UTC(),
	}
	history := append([]models.StatusUpdate{update}, r.History()...)
	if len(history) > MaxStatusUpdates {
		history = history[:MaxStatusUpdates]
	}
	if err := database.Save(r.store, StatusUpdatesKey, history); err != nil {
		return false, fmt.Errorf("failed to save status history: %w", err)
	}
	return true, nil
}

// History returns status changes, newest first
func (r *Repository) History() []models.StatusUpdate {
	return database.Load(r.store, StatusUpdatesKey, []models.StatusUpdate{}, r.log)
}

// Saved returns saved job ids in the order they were saved
func (r *Repository) Saved() []string {
	return database.Load(r.store, SavedKey, []string{}, r.log)
}

// ToggleSaved saves or unsaves a job and reports whether it is now saved
func (r *Repository) ToggleSaved(jobID string) (bool, error) {
	saved := r.Saved()
	nowSaved := !slices.Contains(saved, jobID)
	if nowSaved {
		saved = append(saved, jobID)
	} else {
		saved = slices.DeleteFunc(saved, func(id string) bool { return id == jobID })
	}
	if err := database.Save(r.store, SavedKey, saved); err != nil {
		return false, fmt.Errorf("failed to save saved jobs: %w", err)
	}
	return nowSaved, nil
}

// DigestKey is the store key of the digest for the calendar day of t
func DigestKey(t time.Time) string {
	return DigestKeyPrefix + t.Format("2006-01-02")
}

// Digest returns the stored digest for the day of now
func (r *Repository) Digest(now time.Time) ([]models.ScoredJob, bool) {
	key := DigestKey(now)
	if _, ok, err := r.store.Get(key); err != nil || !ok {
		return nil, false
	}
	// a malformed digest is dropped by Load, which leaves nil
	digest := database.Load[[]models.ScoredJob](r.store, key, nil, r.log)
	return digest, digest != nil
}

// SaveDigest stores the digest for the day of now and removes digests of
// other days
func (r *Repository) SaveDigest(now time.Time, digest []models.ScoredJob) error {
	key := DigestKey(now)
	if err := database.Save(r.store, key, digest); err != nil {
		return fmt.Errorf("failed to save digest: %w", err)
	}

	keys, err := r.store.Keys(DigestKeyPrefix)
	if err != nil {
		return fmt.Errorf("failed to list digests: %w", err)
	}
	for _, k := range keys {
		if k == key {
			continue
		}
		if err := r.store.Delete(k); err != nil {
			return fmt.Errorf("failed to prune digest %s: %w", k, err)
		}
		if r.log != nil {
			r.log.WithField("key", k).Debug("pruned old digest")
		}
	}
	return nil
}
