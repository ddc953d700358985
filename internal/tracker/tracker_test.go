package tracker

import (
	"fmt"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/khrees2412/careerkit/internal/database"
	"github.com/khrees2412/careerkit/internal/matcher"
	"github.com/khrees2412/careerkit/pkg/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

func testJobs() []models.Job {
	return []models.Job{
		{ID: "j1", Title: "React Developer", Company: "Acme", Location: "Pune", Mode: models.ModeRemote, Experience: "1-3", Skills: []string{"React"}, Source: "LinkedIn", PostedDaysAgo: 1, Description: "react role"},
		{ID: "j2", Title: "Java Developer", Company: "Zeta", Location: "Noida", Mode: models.ModeOnsite, Experience: "0-1", Skills: []string{"Java"}, Source: "Naukri", PostedDaysAgo: 4, Description: "java role"},
		{ID: "j3", Title: "Frontend Intern", Company: "Nova", Location: "Pune", Mode: models.ModeHybrid, Experience: "Fresher", Skills: []string{"React", "CSS"}, Source: "Indeed", PostedDaysAgo: 0, Description: "react and css"},
	}
}

func newTestService(t *testing.T) (*Service, *database.Store) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	db, err := database.Open(filepath.Join(t.TempDir(), "jobs.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := db.Namespace("jobs")
	return NewService(NewRepository(store, log), testJobs()), store
}

func reactPrefs() models.Preferences {
	p := models.DefaultPreferences()
	p.RoleKeywords = "react"
	p.PreferredLocations = []string{"Pune"}
	return p
}

func TestPreferences(t *testing.T) {
	svc, _ := newTestService(t)
	repo := svc.Repository()

	assert.Equal(t, models.DefaultPreferences(), repo.Preferences())

	require.NoError(t, repo.SetPreferences(reactPrefs()))
	assert.Equal(t, reactPrefs(), repo.Preferences())

	tests := []struct {
		name  string
		score int
	}{
		{"negative", -1},
		{"above 100", 101},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := reactPrefs()
			p.MinMatchScore = tt.score
			assert.ErrorIs(t, repo.SetPreferences(p), ErrInvalidPreferences)
		})
	}
	assert.Equal(t, reactPrefs(), repo.Preferences())
}

func TestPreferencesFollowStoreWrites(t *testing.T) {
	svc, store := newTestService(t)
	repo := svc.Repository()
	require.NoError(t, repo.SetPreferences(reactPrefs()))
	assert.Equal(t, "react", repo.Preferences().RoleKeywords)

	// another writer on the same namespace
	p := reactPrefs()
	p.RoleKeywords = "java"
	require.NoError(t, database.Save(store, PreferencesKey, p))
	assert.Equal(t, "java", repo.Preferences().RoleKeywords)

	require.NoError(t, store.Set(PreferencesKey, []byte("{broken")))
	assert.Equal(t, models.DefaultPreferences(), repo.Preferences())

	got := repo.Preferences()
	got.PreferredLocations = append(got.PreferredLocations, "Mumbai")
	assert.Empty(t, repo.Preferences().PreferredLocations)
}

func TestSetStatus(t *testing.T) {
	svc, _ := newTestService(t)
	repo := svc.Repository()

	assert.Equal(t, models.StatusNotApplied, repo.Status("j1"))

	changed, err := svc.SetStatus("j1", models.StatusApplied, day)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = svc.SetStatus("j1", models.StatusApplied, day)
	require.NoError(t, err)
	assert.False(t, changed, "same status is not a transition")

	_, err = svc.SetStatus("j1", models.StatusSelected, day.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, models.StatusSelected, repo.Status("j1"))
	history := repo.History()
	require.Len(t, history, 2)
	assert.Equal(t, models.StatusSelected, history[0].Status)
	assert.Equal(t, "React Developer", history[0].Title)
	assert.Equal(t, "Acme", history[0].Company)
	assert.Equal(t, day, history[1].ChangedAt)

	_, err = svc.SetStatus("missing", models.StatusApplied, day)
	assert.ErrorIs(t, err, ErrUnknownJob)
	_, err = svc.SetStatus("j2", models.JobStatus("Ghosted"), day)
	assert.Error(t, err)
}

func TestHistoryCapped(t *testing.T) {
	svc, _ := newTestService(t)
	repo := svc.Repository()

	statuses := []models.JobStatus{models.StatusApplied, models.StatusRejected}
	for i := 0; i < MaxStatusUpdates+5; i++ {
		_, err := svc.SetStatus("j2", statuses[i%2], day.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
	}

	history := repo.History()
	require.Len(t, history, MaxStatusUpdates)
	assert.Equal(t, day.Add(24*time.Minute), history[0].ChangedAt)
	assert.Equal(t, day.Add(5*time.Minute), history[MaxStatusUpdates-1].ChangedAt)
}

func TestToggleSaved(t *testing.T) {
	svc, _ := newTestService(t)

	saved, err := svc.ToggleSaved("j3")
	require.NoError(t, err)
	assert.True(t, saved)
	_, err = svc.ToggleSaved("j1")
	require.NoError(t, err)
	assert.Equal(t, []string{"j3", "j1"}, svc.Repository().Saved())

	jobs := svc.SavedJobs()
	require.Len(t, jobs, 2)
	assert.Equal(t, "Frontend Intern", jobs[0].Title)

	saved, err = svc.ToggleSaved("j3")
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Equal(t, []string{"j1"}, svc.Repository().Saved())

	_, err = svc.ToggleSaved("nope")
	assert.ErrorIs(t, err, ErrUnknownJob)
}

func TestDigestNeedsPreferences(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Digest(day)
	assert.ErrorIs(t, err, ErrNoPreferences)
	_, err = svc.RegenerateDigest(day)
	assert.ErrorIs(t, err, ErrNoPreferences)
}

func TestDigestCachedPerDay(t *testing.T) {
	svc, store := newTestService(t)
	require.NoError(t, svc.Repository().SetPreferences(reactPrefs()))

	first, cached, err := svc.Digest(day)
	require.NoError(t, err)
	assert.False(t, cached)
	require.Len(t, first, 3)
	assert.Equal(t, []string{"j1", "j3", "j2"}, []string{first[0].ID, first[1].ID, first[2].ID})
	assert.Equal(t, 65, first[0].MatchScore)

	// preferences change, but today's digest stays until regenerated
	p := reactPrefs()
	p.RoleKeywords = "java"
	require.NoError(t, svc.Repository().SetPreferences(p))

	again, cached, err := svc.Digest(day.Add(2 * time.Hour))
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, first, again)

	fresh, err := svc.RegenerateDigest(day)
	require.NoError(t, err)
	assert.Equal(t, "j2", fresh[0].ID)

	// a new day computes a new digest and prunes the old one
	_, cached, err = svc.Digest(day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, cached)

	keys, err := store.Keys(DigestKeyPrefix)
	require.NoError(t, err)
	assert.Equal(t, []string{"jobTrackerDigest_2024-06-04"}, keys)
}

func TestMalformedDigestIsRecomputed(t *testing.T) {
	svc, store := newTestService(t)
	require.NoError(t, svc.Repository().SetPreferences(reactPrefs()))
	require.NoError(t, store.Set(DigestKey(day), []byte("not json")))

	digest, cached, err := svc.Digest(day)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Len(t, digest, 3)
}

func TestDashboard(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.Repository().SetPreferences(reactPrefs()))
	_, err := svc.SetStatus("j1", models.StatusApplied, day)
	require.NoError(t, err)

	ids := func(jobs []models.ScoredJob) []string {
		var out []string
		for _, j := range jobs {
			out = append(out, j.ID)
		}
		return out
	}

	tests := []struct {
		name  string
		f     matcher.Filters
		order matcher.SortOrder
		want  []string
	}{
		{"latest", matcher.Filters{}, matcher.SortLatest, []string{"j3", "j1", "j2"}},
		{"oldest", matcher.Filters{}, matcher.SortOldest, []string{"j2", "j1", "j3"}},
		{"location", matcher.Filters{Location: "Pune"}, matcher.SortLatest, []string{"j3", "j1"}},
		{"status", matcher.Filters{Status: string(models.StatusApplied)}, matcher.SortLatest, []string{"j1"}},
		{"only matches", matcher.Filters{OnlyMatches: true}, matcher.SortLatest, []string{"j1"}},
		{"search skill", matcher.Filters{Search: "css"}, matcher.SortMatch, []string{"j3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(svc.Dashboard(tt.f, tt.order)))
		})
	}
}

func TestStats(t *testing.T) {
	svc, _ := newTestService(t)

	st := svc.Stats()
	assert.Equal(t, 3, st.Total)
	assert.Equal(t, 0, st.Matches)
	assert.Equal(t, 3, st.ByStatus[models.StatusNotApplied])
	assert.Nil(t, st.RecentChange)

	require.NoError(t, svc.Repository().SetPreferences(reactPrefs()))
	_, err := svc.SetStatus("j2", models.StatusRejected, day)
	require.NoError(t, err)
	_, err = svc.ToggleSaved("j1")
	require.NoError(t, err)

	st = svc.Stats()
	assert.Equal(t, 1, st.Matches)
	assert.Equal(t, 1, st.Saved)
	assert.Equal(t, 2, st.ByStatus[models.StatusNotApplied])
	assert.Equal(t, 1, st.ByStatus[models.StatusRejected])
	require.NotNil(t, st.RecentChange)
	assert.Equal(t, "j2", st.RecentChange.JobID)
}

func TestDigestKey(t *testing.T) {
	for i, want := range []string{"2024-06-03", "2024-06-04"} {
		assert.Equal(t, fmt.Sprintf("%s%s", DigestKeyPrefix, want), DigestKey(day.AddDate(0, 0, i)))
	}
}
