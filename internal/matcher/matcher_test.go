package matcher

import (
	"testing"

	"github.com/khrees2412/careerkit/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reactJob() models.Job {
	return models.Job{
		ID:            "job-8",
		Title:         "React Developer",
		Company:       "Acme",
		Location:      "Pune",
		Mode:          models.ModeHybrid,
		Experience:    "1-3",
		Skills:        []string{"React", "TypeScript", "Node.js"},
		Source:        "LinkedIn",
		PostedDaysAgo: 1,
		SalaryRange:   "10–18 LPA",
		Description:   "Build UI with React.",
	}
}

func TestCalculateMatchScore(t *testing.T) {
	full := models.Preferences{
		RoleKeywords:       "react",
		PreferredLocations: []string{"Pune"},
		PreferredMode:      []string{"Hybrid"},
		ExperienceLevel:    "1-3",
		Skills:             "go, typescript",
	}

	tests := []struct {
		name   string
		job    func() models.Job
		prefs  func() models.Preferences
		expect int
	}{
		{
			name:   "everything matches, clamped",
			job:    reactJob,
			prefs:  func() models.Preferences { return full },
			expect: 100,
		},
		{
			name: "description does not mention keyword",
			job: func() models.Job {
				j := reactJob()
				j.Description = "Frontend work."
				return j
			},
			prefs:  func() models.Preferences { return full },
			expect: 25 + 15 + 10 + 10 + 15 + 5 + 5,
		},
		{
			name: "no role keywords",
			job:  reactJob,
			prefs: func() models.Preferences {
				p := full
				p.RoleKeywords = " , "
				return p
			},
			expect: 0,
		},
		{
			name:   "zero preferences",
			job:    reactJob,
			prefs:  func() models.Preferences { return models.Preferences{} },
			expect: 0,
		},
		{
			name: "keywords only, stale Naukri job",
			job: func() models.Job {
				j := reactJob()
				j.Source = "Naukri"
				j.PostedDaysAgo = 5
				return j
			},
			prefs:  func() models.Preferences { return models.Preferences{RoleKeywords: "React"} },
			expect: 40,
		},
		{
			name: "experience All gives nothing",
			job:  reactJob,
			prefs: func() models.Preferences {
				return models.Preferences{RoleKeywords: "python", ExperienceLevel: "All"}
			},
			expect: 10,
		},
		{
			name: "second keyword matches title",
			job:  reactJob,
			prefs: func() models.Preferences {
				return models.Preferences{RoleKeywords: "java, developer"}
			},
			expect: 25 + 5 + 5,
		},
		{
			name: "skill match is exact, not substring",
			job:  reactJob,
			prefs: func() models.Preferences {
				return models.Preferences{RoleKeywords: "qa", Skills: "type"}
			},
			expect: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateMatchScore(tt.job(), tt.prefs())
			assert.Equal(t, tt.expect, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestTopMatches(t *testing.T) {
	var jobs []models.Job
	for i, posted := range []int{5, 3, 0, 9, 3} {
		j := reactJob()
		j.ID = string(rune('a' + i))
		j.PostedDaysAgo = posted
		j.Source = "Indeed"
		jobs = append(jobs, j)
	}
	jobs[3].Title = "Java Developer"

	top := TopMatches(jobs, models.Preferences{RoleKeywords: "react"}, 3)
	require.Len(t, top, 3)
	// all React jobs score 40 (+5 when fresh); ties fall back to posting date
	assert.Equal(t, "c", top[0].ID)
	assert.Equal(t, 45, top[0].MatchScore)
	assert.Equal(t, "b", top[1].ID)
	assert.Equal(t, "e", top[2].ID)

	all := TopMatches(jobs, models.Preferences{RoleKeywords: "react"}, DigestSize)
	assert.Len(t, all, len(jobs))
	assert.Equal(t, "d", all[len(all)-1].ID)
}

func TestScoreAllKeepsOrder(t *testing.T) {
	jobs := []models.Job{reactJob(), reactJob()}
	jobs[1].ID = "other"
	scored := ScoreAll(jobs, models.Preferences{})
	require.Len(t, scored, 2)
	assert.Equal(t, "other", scored[1].ID)
	assert.Equal(t, 0, scored[1].MatchScore)
}
