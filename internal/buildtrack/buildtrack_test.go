package buildtrack

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/khrees2412/careerkit/internal/database"
	"github.com/khrees2412/careerkit/pkg/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

var validLinks = models.SubmissionLinks{
	Lovable: "https://lovable.dev/projects/abc",
	GitHub:  "https://github.com/jane/resume",
	Deploy:  "https://resume.example.com",
}

func newTestTracker(t *testing.T, steps []Step) (*Tracker, *database.Store) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	db, err := database.Open(filepath.Join(t.TempDir(), "track.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := db.Namespace("resume")
	return New(store, log, steps), store
}

func completeAll(t *testing.T, tr *Tracker) {
	t.Helper()
	for _, s := range tr.Steps() {
		ok, err := tr.Complete(s.ID, s.ID+".png", now)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestInitialState(t *testing.T) {
	tr, _ := newTestTracker(t, nil)

	st := tr.State()
	require.Len(t, st.Steps, len(ResumeSteps))
	assert.Equal(t, models.StepUnlocked, st.Steps[0].Status)
	for _, s := range st.Steps[1:] {
		assert.Equal(t, models.StepLocked, s.Status)
	}

	step, idx, ok := tr.Current()
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "01-problem", step.ID)
	assert.Equal(t, StatusNotStarted, tr.Status())
}

func TestCompleteUnlocksOnlyNext(t *testing.T) {
	tr, _ := newTestTracker(t, nil)

	ok, err := tr.Complete("01-problem", "problem.png", now)
	require.NoError(t, err)
	assert.True(t, ok)

	st := tr.State()
	assert.Equal(t, models.StepCompleted, st.Steps[0].Status)
	assert.Equal(t, models.StepUnlocked, st.Steps[1].Status)
	assert.Equal(t, models.StepLocked, st.Steps[2].Status)
	assert.Equal(t, models.Artifact{FileName: "problem.png", UploadedAt: now}, st.Artifacts[ArtifactKey("01-problem")])
	assert.Equal(t, StatusInProgress, tr.Status())

	_, idx, _ := tr.Current()
	assert.Equal(t, 1, idx)
}

func TestCompleteNoOps(t *testing.T) {
	tr, _ := newTestTracker(t, nil)

	tests := []struct {
		name string
		id   string
	}{
		{"locked step", "03-architecture"},
		{"last step while locked", "08-ship"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tr.State()
			ok, err := tr.Complete(tt.id, "x.png", now)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, before, tr.State())
		})
	}

	t.Run("already completed", func(t *testing.T) {
		ok, err := tr.Complete("01-problem", "a.png", now)
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = tr.Complete("01-problem", "b.png", now.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "a.png", tr.State().Artifacts[ArtifactKey("01-problem")].FileName)
	})

	t.Run("unknown step", func(t *testing.T) {
		_, err := tr.Complete("99-nope", "x.png", now)
		assert.ErrorIs(t, err, ErrUnknownStep)
	})
}

func TestValidateLinks(t *testing.T) {
	tests := []struct {
		name  string
		links models.SubmissionLinks
		want  LinkErrors
	}{
		{"all valid", validLinks, nil},
		{"empty is fine", models.SubmissionLinks{}, nil},
		{"not a url", models.SubmissionLinks{GitHub: "github.com/jane"}, LinkErrors{"githubLink": InvalidURLMessage}},
		{"wrong scheme", models.SubmissionLinks{Deploy: "ftp://files.example.com"}, LinkErrors{"deployLink": InvalidURLMessage}},
		{
			"two bad",
			models.SubmissionLinks{Lovable: "nope", GitHub: "https://github.com/x", Deploy: "also nope"},
			LinkErrors{"lovableLink": InvalidURLMessage, "deployLink": InvalidURLMessage},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateLinks(tt.links)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetLinksKeepsInvalidValues(t *testing.T) {
	tr, _ := newTestTracker(t, nil)

	links := validLinks
	links.Deploy = "not-a-url"
	errs, err := tr.SetLinks(links)
	require.NoError(t, err)
	assert.Equal(t, LinkErrors{"deployLink": InvalidURLMessage}, errs)
	assert.Contains(t, errs.Error(), "deployLink")

	assert.Equal(t, links, tr.State().Links)
	assert.Equal(t, StatusInProgress, tr.Status())
}

func TestShipped(t *testing.T) {
	tr, _ := newTestTracker(t, nil)

	_, err := tr.SetLinks(validLinks)
	require.NoError(t, err)
	assert.False(t, tr.Shipped(), "links alone do not ship")

	completeAll(t, tr)
	assert.True(t, tr.Done())
	assert.True(t, tr.Shipped())
	assert.Equal(t, StatusShipped, tr.Status())

	_, _, ok := tr.Current()
	assert.False(t, ok)

	missing := validLinks
	missing.GitHub = ""
	_, err = tr.SetLinks(missing)
	require.NoError(t, err)
	assert.False(t, tr.Shipped())
	assert.Equal(t, StatusInProgress, tr.Status())
}

func TestResetAndPersistence(t *testing.T) {
	tr, store := newTestTracker(t, nil)
	completeAll(t, tr)

	// a second tracker on the same store sees the same progress
	other := New(store, nil, nil)
	assert.True(t, other.Done())

	require.NoError(t, tr.Reset())
	assert.Equal(t, StatusNotStarted, other.Status())
}

func TestMismatchedStoredSteps(t *testing.T) {
	short := []Step{{"a", "A"}, {"b", "B"}}
	tr, store := newTestTracker(t, short)
	completeAll(t, tr)

	full := New(store, nil, nil)
	st := full.State()
	require.Len(t, st.Steps, len(ResumeSteps))
	assert.Equal(t, models.StepUnlocked, st.Steps[0].Status)
}

func TestMalformedStateFallsBack(t *testing.T) {
	tr, store := newTestTracker(t, nil)
	require.NoError(t, store.Set(StateKey, []byte("{broken")))

	st := tr.State()
	assert.Equal(t, models.StepUnlocked, st.Steps[0].Status)

	_, ok, err := store.Get(StateKey)
	require.NoError(t, err)
	assert.False(t, ok)
}
