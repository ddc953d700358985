package ats

import (
	"strings"
	"testing"

	"github.com/khrees2412/careerkit/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullResume() models.Resume {
	return models.Resume{
		PersonalInfo: models.PersonalInfo{Name: "Jane Doe", Email: "jane@example.com", Phone: "123"},
		Summary:      "Engineer who led the rewrite of a payments platform serving millions.",
		Experience:   []models.ExperienceEntry{{ID: "e1", Company: "Acme", Role: "SWE", Description: "Shipped things"}},
		Education:    []models.EducationEntry{{ID: "d1", School: "State", Degree: "BS"}},
		Projects:     []models.ProjectEntry{{ID: "p1", Name: "careerkit"}},
		Skills: models.SkillSet{
			Technical: []string{"Go", "SQL", "React"},
			Soft:      []string{"Mentoring"},
			Tools:     []string{"Docker"},
		},
		Links: models.Links{GitHub: "https://github.com/jane", LinkedIn: "https://linkedin.com/in/jane"},
	}
}

func TestScoreEmptyResume(t *testing.T) {
	res := Score(models.Resume{})

	assert.Equal(t, 0, res.Score)
	require.Len(t, res.Suggestions, 11)
	assert.Equal(t, "Add your full name", res.Suggestions[0].Text)
	assert.Equal(t, "Include action verbs in your summary (e.g., built, led)", res.Suggestions[3].Text)
	assert.Equal(t, "Add at least 5 more skills", res.Suggestions[6].Text)
	assert.Equal(t, "Add your GitHub profile link", res.Suggestions[10].Text)

	total := 0
	for _, s := range res.Suggestions {
		total += s.Points
	}
	assert.Equal(t, 100, total)
}

func TestScoreFullResume(t *testing.T) {
	res := Score(fullResume())
	assert.Equal(t, 100, res.Score)
	assert.Empty(t, res.Suggestions)
}

func TestScoreRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.Resume)
		lost   int
		text   string
	}{
		{"no name", func(r *models.Resume) { r.PersonalInfo.Name = "" }, 10, "Add your full name"},
		{"short summary", func(r *models.Resume) { r.Summary = "I led teams." }, 10, "Write a summary of at least 50 characters"},
		{"short multibyte summary", func(r *models.Resume) { r.Summary = "Built " + strings.Repeat("é", 30) }, 10, "Write a summary of at least 50 characters"},
		{"no action verb", func(r *models.Resume) {
			r.Summary = "A passionate engineer with an interest in distributed systems and APIs."
		}, 10, "Include action verbs in your summary (e.g., built, led)"},
		{"experience without description", func(r *models.Resume) { r.Experience[0].Description = "" }, 15, "Add at least one work experience entry"},
		{"three skills", func(r *models.Resume) { r.Skills = models.SkillSet{Technical: []string{"Go", "SQL", "C"}} }, 10, "Add at least 2 more skills"},
		{"no projects", func(r *models.Resume) { r.Projects = nil }, 10, "Add at least one project"},
		{"no phone", func(r *models.Resume) { r.PersonalInfo.Phone = "" }, 5, "Add your phone number"},
		{"no linkedin", func(r *models.Resume) { r.Links.LinkedIn = "" }, 5, "Add your LinkedIn profile link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := fullResume()
			tt.mutate(&r)
			res := Score(r)
			assert.Equal(t, 100-tt.lost, res.Score)
			require.Len(t, res.Suggestions, 1)
			assert.Equal(t, tt.text, res.Suggestions[0].Text)
			assert.Equal(t, tt.lost, res.Suggestions[0].Points)
		})
	}
}

func TestScoreActionVerbCaseInsensitive(t *testing.T) {
	r := fullResume()
	r.Summary = strings.ToUpper(r.Summary)
	assert.Equal(t, 100, Score(r).Score)
}

func TestScoreMonotonic(t *testing.T) {
	steps := []func(r *models.Resume){
		func(r *models.Resume) { r.PersonalInfo.Name = "Jane" },
		func(r *models.Resume) { r.Links.GitHub = "https://github.com/jane" },
		func(r *models.Resume) { r.Summary = "Developer who built and shipped several production services end to end." },
		func(r *models.Resume) { r.Projects = append(r.Projects, models.ProjectEntry{ID: "p"}) },
		func(r *models.Resume) { r.Skills.Tools = []string{"a", "b", "c", "d", "e"} },
		func(r *models.Resume) {
			r.Experience = append(r.Experience, models.ExperienceEntry{ID: "e", Description: "x"})
		},
	}

	r := models.Resume{}
	prev := Score(r).Score
	for i, step := range steps {
		step(&r)
		got := Score(r).Score
		assert.GreaterOrEqual(t, got, prev, "step %d", i)
		assert.LessOrEqual(t, got, 100)
		prev = got
	}
}

func TestBand(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Needs Work"},
		{40, "Needs Work"},
		{41, "Getting There"},
		{70, "Getting There"},
		{71, "Strong Resume"},
		{100, "Strong Resume"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Band(tt.score), "score %d", tt.score)
	}
}

func TestTop(t *testing.T) {
	res := Score(models.Resume{})
	assert.Len(t, res.Top(3), 3)
	assert.Len(t, Score(fullResume()).Top(3), 0)
}

func TestCheckBullet(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"strong", "• Led a team of 5 engineers", nil},
		{"dash marker", "- Improved latency by 3x", nil},
		{"weak opener", "* Responsible for 4 APIs", []string{hintActionVerb}},
		{"no number", "Built the billing pipeline", []string{hintMeasurable}},
		{"both", "Worked on stuff", []string{hintActionVerb, hintMeasurable}},
		{"blank", "   ", nil},
		{"only marker", "•", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckBullet(tt.line))
		})
	}
}

func TestCheckDescription(t *testing.T) {
	hints := CheckDescription("• Led migration saving 30%\n• Helped the team\n\n")
	require.Len(t, hints, 1)
	assert.Equal(t, "• Helped the team", hints[0].Line)
}
