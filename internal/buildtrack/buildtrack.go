// Package buildtrack gates a sequence of build steps: each step unlocks the
// next when completed, and the project ships once every step is done and the
// submission links are valid.
package buildtrack

import (
	"errors"
	"fmt"
	"time"

	"github.com/khrees2412/careerkit/internal/database"
	"github.com/khrees2412/careerkit/pkg/models"
	"github.com/sirupsen/logrus"
)

// StateKey is where the track state lives in its store
const StateKey = "rb_build_track_state"

// ErrUnknownStep is returned when completing a step id the track does not have
var ErrUnknownStep = errors.New("unknown step")

// Step is one stage of the build track
type Step struct {
	ID   string
	Name string
}

// ResumeSteps are the stages of the resume builder project
var ResumeSteps = []Step{
	{"01-problem", "Problem Definition"},
	{"02-market", "Market Research"},
	{"03-architecture", "System Architecture"},
	{"04-hld", "High-Level Design"},
	{"05-lld", "Low-Level Design"},
	{"06-build", "Build & Develop"},
	{"07-test", "Testing & QA"},
	{"08-ship", "Ship & Deploy"},
}

// ProjectStatus summarises how far the project has come
type ProjectStatus string

const (
	StatusNotStarted ProjectStatus = "Not Started"
	StatusInProgress ProjectStatus = "In Progress"
	StatusShipped    ProjectStatus = "Shipped"
)

// Tracker persists and advances a build track
type Tracker struct {
	store database.KeyValueStore
	log   logrus.FieldLogger
	steps []Step
}

// New returns a tracker over steps, defaulting to ResumeSteps
func New(store database.KeyValueStore, log logrus.FieldLogger, steps []Step) *Tracker {
	if len(steps) == 0 {
		steps = ResumeSteps
	}
	return &Tracker{store: store, log: log, steps: steps}
}

// Steps returns the configured steps in order
func (t *Tracker) Steps() []Step {
	return t.steps
}

// initial has the first step unlocked and the rest locked
func (t *Tracker) initial() models.BuildTrackState {
	steps := make([]models.StepState, len(t.steps))
	for i, s := range t.steps {
		status := models.StepLocked
		if i == 0 {
			status = models.StepUnlocked
		}
		steps[i] = models.StepState{ID: s.ID, Status: status}
	}
	return models.BuildTrackState{Steps: steps, Artifacts: map[string]models.Artifact{}}
}

// State loads the stored state. A stored state whose steps do not match the
// configured ones is discarded.
func (t *Tracker) State() models.BuildTrackState {
	st := database.Load(t.store, StateKey, t.initial(), t.log)
	if !t.matches(st) {
		if t.log != nil {
			t.log.WithField("key", StateKey).Warn("stored build track does not match steps, starting over")
		}
		return t.initial()
	}
	if st.Artifacts == nil {
		st.Artifacts = map[string]models.Artifact{}
	}
	return st
}

func (t *Tracker) matches(st models.BuildTrackState) bool {
	if len(st.Steps) != len(t.steps) {
		return false
	}
	for i, s := range st.Steps {
		if s.ID != t.steps[i].ID {
			return false
		}
	}
	return true
}

// Current returns the unlocked step and its index. ok is false once every
// step is completed.
func (t *Tracker) Current() (Step, int, bool) {
	for i, s := range t.State().Steps {
		if s.Status == models.StepUnlocked {
			return t.steps[i], i, true
		}
	}
	return Step{}, len(t.steps), false
}

// Done reports whether every step is completed
func (t *Tracker) Done() bool {
	return allCompleted(t.State())
}

// Complete marks the unlocked step id as completed, records its artifact and
// unlocks the following step. Locked or already completed steps are left
// alone and false is returned.
func (t *Tracker) Complete(id, fileName string, now time.Time) (bool, error) {
	st := t.State()

	idx := -1
	for i, s := range st.Steps {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, fmt.Errorf("%w: %s", ErrUnknownStep, id)
	}
	if st.Steps[idx].Status != models.StepUnlocked {
		return false, nil
	}

	st.Steps[idx].Status = models.StepCompleted
	if idx+1 < len(st.Steps) && st.Steps[idx+1].Status == models.StepLocked {
		st.Steps[idx+1].Status = models.StepUnlocked
	}
	st.Artifacts[ArtifactKey(id)] = models.Artifact{FileName: fileName, UploadedAt: now.UTC()}

	if err := database.Save(t.store, StateKey, st); err != nil {
		return false, fmt.Errorf("save build track: %w", err)
	}
	return true, nil
}

// ArtifactKey names the artifact entry of a step
func ArtifactKey(stepID string) string {
	return "rb_step_" + stepID + "_artifact"
}

// SetLinks stores the submission links. Invalid links are stored as well so
// the user can keep editing; their messages come back in LinkErrors.
func (t *Tracker) SetLinks(links models.SubmissionLinks) (LinkErrors, error) {
	st := t.State()
	st.Links = links
	if err := database.Save(t.store, StateKey, st); err != nil {
		return nil, fmt.Errorf("save build track: %w", err)
	}
	return ValidateLinks(links), nil
}

// Shipped is true when every step is completed and all three links are
// present and valid
func (t *Tracker) Shipped() bool {
	return shipped(t.State())
}

// Status reports Not Started, In Progress or Shipped
func (t *Tracker) Status() ProjectStatus {
	st := t.State()
	switch {
	case shipped(st):
		return StatusShipped
	case started(st):
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}

// Reset clears all progress
func (t *Tracker) Reset() error {
	if err := t.store.Delete(StateKey); err != nil {
		return fmt.Errorf("reset build track: %w", err)
	}
	return nil
}

func allCompleted(st models.BuildTrackState) bool {
	for _, s := range st.Steps {
		if s.Status != models.StepCompleted {
			return false
		}
	}
	return true
}

func shipped(st models.BuildTrackState) bool {
	l := st.Links
	if l.Lovable == "" || l.GitHub == "" || l.Deploy == "" {
		return false
	}
	return allCompleted(st) && len(ValidateLinks(l)) == 0
}

func started(st models.BuildTrackState) bool {
	for _, s := range st.Steps {
		if s.Status == models.StepCompleted {
			return true
		}
	}
	l := st.Links
	return l.Lovable != "" || l.GitHub != "" || l.Deploy != ""
}
