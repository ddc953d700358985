package matcher

import (
	"testing"

	"github.com/khrees2412/careerkit/pkg/models"
	"github.com/stretchr/testify/assert"
)

func sampleScored() []models.ScoredJob {
	mk := func(id, title, company, loc string, mode models.WorkMode, exp, src string, posted, score int, salary string, skills ...string) models.ScoredJob {
		return models.ScoredJob{
			Job: models.Job{
				ID: id, Title: title, Company: company, Location: loc, Mode: mode,
				Experience: exp, Source: src, PostedDaysAgo: posted, SalaryRange: salary, Skills: skills,
			},
			MatchScore: score,
		}
	}
	return []models.ScoredJob{
		mk("1", "SDE Intern", "Infosys", "Bengaluru", models.ModeRemote, "Fresher", "LinkedIn", 4, 30, "₹25k–₹40k/month Internship", "React", "Go"),
		mk("2", "Java Developer", "TCS", "Pune", models.ModeOnsite, "0-1", "Naukri", 1, 70, "6–12 LPA", "Java", "SQL"),
		mk("3", "DevOps Associate", "Wipro", "Remote", models.ModeRemote, "1-3", "Indeed", 9, 55, "12–20 LPA", "AWS", "Docker"),
		mk("4", "QA Intern", "Zoho", "Pune", models.ModeHybrid, "Fresher", "LinkedIn", 0, 10, "₹20k–₹35k/month Internship", "Python"),
	}
}

func ids(jobs []models.ScoredJob) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	statuses := map[string]models.JobStatus{"2": models.StatusApplied}

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{"no filters", Filters{}, []string{"1", "2", "3", "4"}},
		{"All is a wildcard", Filters{Location: "All", Mode: "All", Source: "All"}, []string{"1", "2", "3", "4"}},
		{"search title", Filters{Search: "intern"}, []string{"1", "4"}},
		{"search company", Filters{Search: "wipro"}, []string{"3"}},
		{"search skill", Filters{Search: "sql"}, []string{"2"}},
		{"location", Filters{Location: "Pune"}, []string{"2", "4"}},
		{"mode", Filters{Mode: "Remote"}, []string{"1", "3"}},
		{"experience", Filters{Experience: "Fresher"}, []string{"1", "4"}},
		{"source", Filters{Source: "LinkedIn"}, []string{"1", "4"}},
		{"status applied", Filters{Status: "Applied"}, []string{"2"}},
		{"status defaults to not applied", Filters{Status: "Not Applied"}, []string{"1", "3", "4"}},
		{"only matches", Filters{OnlyMatches: true}, []string{"2", "3"}},
		{"combined", Filters{Location: "Pune", OnlyMatches: true}, []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sampleScored(), tt.filters, statuses, 40)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		order SortOrder
		want  []string
	}{
		{SortLatest, []string{"4", "2", "1", "3"}},
		{SortOldest, []string{"3", "1", "2", "4"}},
		{SortMatch, []string{"2", "3", "1", "4"}},
		{SortSalary, []string{"3", "2", "1", "4"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			jobs := sampleScored()
			Sort(jobs, tt.order)
			assert.Equal(t, tt.want, ids(jobs))
		})
	}
}

func TestParseSortOrder(t *testing.T) {
	o, ok := ParseSortOrder("MatchScore")
	assert.True(t, ok)
	assert.Equal(t, SortMatch, o)

	o, ok = ParseSortOrder("")
	assert.True(t, ok)
	assert.Equal(t, SortLatest, o)

	_, ok = ParseSortOrder("random")
	assert.False(t, ok)
}

func TestSalaryValue(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"₹25k–₹40k/month Internship", 300000},
		{"3.5–6 LPA", 350000},
		{"15–25 LPA", 1500000},
		{"Competitive", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SalaryValue(tt.in), tt.in)
	}
}
