package tracker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/khrees2412/careerkit/internal/catalog"
	"github.com/khrees2412/careerkit/internal/matcher"
	"github.com/khrees2412/careerkit/pkg/models"
)

var (
	// ErrNoPreferences is returned by operations that need role keywords
	ErrNoPreferences = errors.New("set your role keywords first")
	// ErrUnknownJob is returned for ids that are not in the catalog
	ErrUnknownJob = errors.New("job not found")
)

// Service combines the catalog with stored tracker state
type Service struct {
	repo *Repository
	jobs []models.Job
}

// NewService creates a Service over a fixed job catalog
func NewService(repo *Repository, jobs []models.Job) *Service {
	return &Service{repo: repo, jobs: jobs}
}

// Repository exposes the underlying store
func (s *Service) Repository() *Repository {
	return s.repo
}

// Jobs returns the catalog
func (s *Service) Jobs() []models.Job {
	return s.jobs
}

// Job looks up a catalog entry
func (s *Service) Job(id string) (models.Job, error) {
	job, ok := catalog.Find(s.jobs, id)
	if !ok {
		return models.Job{}, fmt.Errorf("%w: %s", ErrUnknownJob, id)
	}
	return job, nil
}

// Scored returns one catalog entry with its current match score
func (s *Service) Scored(id string) (models.ScoredJob, error) {
	job, err := s.Job(id)
	if err != nil {
		return models.ScoredJob{}, err
	}
	return models.ScoredJob{Job: job, MatchScore: matcher.CalculateMatchScore(job, s.repo.Preferences())}, nil
}

// Dashboard scores, filters and sorts the catalog
func (s *Service) Dashboard(f matcher.Filters, order matcher.SortOrder) []models.ScoredJob {
	prefs := s.repo.Preferences()
	jobs := matcher.Filter(matcher.ScoreAll(s.jobs, prefs), f, s.repo.Statuses(), prefs.MinMatchScore)
	matcher.Sort(jobs, order)
	return jobs
}

// SavedJobs returns the saved catalog entries with their scores. Saved ids
// no longer in the catalog are skipped.
func (s *Service) SavedJobs() []models.ScoredJob {
	prefs := s.repo.Preferences()
	var out []models.ScoredJob
	for _, id := range s.repo.Saved() {
		if job, ok := catalog.Find(s.jobs, id); ok {
			out = append(out, models.ScoredJob{Job: job, MatchScore: matcher.CalculateMatchScore(job, prefs)})
		}
	}
	return out
}

// ToggleSaved saves or unsaves a catalog job
func (s *Service) ToggleSaved(id string) (bool, error) {
	if _, err := s.Job(id); err != nil {
		return false, err
	}
	return s.repo.ToggleSaved(id)
}

// SetStatus changes the status of a catalog job
func (s *Service) SetStatus(id string, status models.JobStatus, now time.Time) (bool, error) {
	job, err := s.Job(id)
	if err != nil {
		return false, err
	}
	return s.repo.SetStatus(job, status, now)
}

// Digest returns today's digest, computing and storing it on first use. The
// bool reports whether it came from the store.
func (s *Service) Digest(now time.Time) ([]models.ScoredJob, bool, error) {
	if strings.TrimSpace(s.repo.Preferences().RoleKeywords) == "" {
		return nil, false, ErrNoPreferences
	}
	if digest, ok := s.repo.Digest(now); ok {
		return digest, true, nil
	}
	digest, err := s.RegenerateDigest(now)
	return digest, false, err
}

// RegenerateDigest recomputes today's digest and replaces the stored one
func (s *Service) RegenerateDigest(now time.Time) ([]models.ScoredJob, error) {
	prefs := s.repo.Preferences()
	if strings.TrimSpace(prefs.RoleKeywords) == "" {
		return nil, ErrNoPreferences
	}
	digest := matcher.TopMatches(s.jobs, prefs, matcher.DigestSize)
	if err := s.repo.SaveDigest(now, digest); err != nil {
		return nil, err
	}
	return digest, nil
}

// Stats summarises the tracker for the stats command
type Stats struct {
	Total        int
	Saved        int
	Matches      int
	ByStatus     map[models.JobStatus]int
	RecentChange *models.StatusUpdate
}

// Stats counts catalog jobs per status along with saved and matching jobs
func (s *Service) Stats() Stats {
	prefs := s.repo.Preferences()
	statuses := s.repo.Statuses()

	st := Stats{Total: len(s.jobs), Saved: len(s.repo.Saved()), ByStatus: map[models.JobStatus]int{}}
	for _, job := range s.jobs {
		status, ok := statuses[job.ID]
		if !ok {
			status = models.StatusNotApplied
		}
		st.ByStatus[status]++
		if prefs.RoleKeywords != "" && matcher.CalculateMatchScore(job, prefs) >= prefs.MinMatchScore {
			st.Matches++
		}
	}
	if history := s.repo.History(); len(history) > 0 {
		st.RecentChange = &history[0]
	}
	return st
}
