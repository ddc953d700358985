package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/khrees2412/careerkit/internal/app"
	"github.com/khrees2412/careerkit/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	a, err := app.New(&config.Config{DataDir: t.TempDir()}, log)
	require.NoError(t, err)
	a.Now = func() time.Time { return time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { a.Close() })
	return a
}

// run executes the root command against a with the given arguments and
// returns everything written to either stream
func run(t *testing.T, a *app.App, args ...string) (string, error) {
	t.Helper()
	stdout, stderr, err := runStreams(t, a, args...)
	return stdout + stderr, err
}

// runStreams is run with stdout and stderr kept apart
func runStreams(t *testing.T, a *app.App, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	})

	err := rootCmd.ExecuteContext(app.SetAppInContext(context.Background(), a))
	return out.String(), errOut.String(), err
}

func TestResumeCommands(t *testing.T) {
	a := newTestApp(t)

	out, err := run(t, a, "resume", "score")
	require.NoError(t, err)
	assert.Contains(t, out, "0/100")
	assert.Contains(t, out, "Needs Work")

	_, err = run(t, a, "resume", "sample")
	require.NoError(t, err)

	out, err = run(t, a, "resume", "show")
	require.NoError(t, err)
	assert.Contains(t, out, a.Resume.Get().PersonalInfo.Name)

	_, err = run(t, a, "resume", "set", "nickname", "JD")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "resume.txt")
	_, err = run(t, a, "resume", "export", "--out", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), a.Resume.Get().PersonalInfo.Name+"\n"))

	out, err = run(t, a, "resume", "bullet", "Worked on billing")
	require.NoError(t, err)
	assert.Contains(t, out, "action verb")
	assert.Contains(t, out, "measurable impact")
}

func TestPrefsAndJobs(t *testing.T) {
	a := newTestApp(t)

	_, err := run(t, a, "jobs", "digest")
	assert.Error(t, err)

	_, err = run(t, a, "prefs", "set", "--keywords", "developer", "--skills", "React", "--min-score", "40")
	require.NoError(t, err)
	assert.Equal(t, "developer", a.Tracker.Repository().Preferences().RoleKeywords)

	stdout, stderr, err := runStreams(t, a, "jobs", "digest")
	require.NoError(t, err)
	assert.Contains(t, stdout, "March 15, 2024")
	assert.NotContains(t, stderr, "March 15, 2024")

	stdout, stderr, err = runStreams(t, a, "jobs", "digest")
	require.NoError(t, err)
	assert.Contains(t, stdout, "March 15, 2024")
	assert.Contains(t, stderr, "generated earlier today")
	assert.NotContains(t, stdout, "generated earlier today")

	stdout, _, err = runStreams(t, a, "jobs", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Jobs (")

	_, err = run(t, a, "jobs", "status", "job-0", "applied")
	require.NoError(t, err)
	assert.Equal(t, "Applied", string(a.Tracker.Repository().Status("job-0")))

	_, err = run(t, a, "jobs", "status", "job-0", "ghosted")
	assert.ErrorIs(t, err, app.ErrInvalidArgument)

	out, err := run(t, a, "jobs", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Applied")

	_, err = run(t, a, "jobs", "save", "job-2")
	require.NoError(t, err)
	out, err = run(t, a, "jobs", "saved")
	require.NoError(t, err)
	assert.Contains(t, out, "job-2")

	_, err = run(t, a, "jobs", "show", "job-999")
	assert.Error(t, err)
}

func TestPrepCommands(t *testing.T) {
	a := newTestApp(t)

	_, err := run(t, a, "prep", "show")
	assert.Error(t, err)

	jd := filepath.Join(t.TempDir(), "jd.txt")
	require.NoError(t, os.WriteFile(jd, []byte("We need Java, DSA, SQL and React experience."), 0o644))

	out, err := run(t, a, "prep", "analyze", "--company", "Infosys", "--role", "SDE", "--file", jd)
	require.NoError(t, err)
	assert.Contains(t, out, "SDE at Infosys")
	assert.Contains(t, out, "too short")

	latest, ok, err := a.History.Latest()
	require.NoError(t, err)
	require.True(t, ok)

	_, err = run(t, a, "prep", "toggle", latest.ID, "java")
	require.NoError(t, err)
	updated, err := a.History.Get(latest.ID)
	require.NoError(t, err)
	assert.Equal(t, latest.FinalScore+2, updated.FinalScore)

	out, err = run(t, a, "prep", "export", "--section", "questions")
	require.NoError(t, err)
	assert.Contains(t, out, "1. ")
}

func TestTrackCommands(t *testing.T) {
	a := newTestApp(t)

	_, err := run(t, a, "track", "complete", "03-architecture")
	assert.Error(t, err)

	_, err = run(t, a, "track", "complete")
	require.NoError(t, err)
	_, idx, _ := a.BuildTrack.Current()
	assert.Equal(t, 1, idx)

	out, err := run(t, a, "track", "links", "--github", "not a url")
	require.NoError(t, err)
	assert.Contains(t, out, "Please enter a valid URL")

	out, err = run(t, a, "track", "submission", "--project", "placement")
	require.NoError(t, err)
	assert.Contains(t, out, "Placement Readiness Platform")
	assert.Contains(t, out, "Not provided")
}
