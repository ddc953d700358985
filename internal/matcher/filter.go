package matcher

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/khrees2412/careerkit/pkg/models"
)

// FilterAll is the value that disables a filter
const FilterAll = "All"

// Filters narrows the dashboard job list. Empty or "All" fields match
// everything.
type Filters struct {
	Search      string
	Location    string
	Mode        string
	Experience  string
	Source      string
	Status      string
	OnlyMatches bool
}

// SortOrder orders the dashboard job list
type SortOrder string

const (
	SortLatest SortOrder = "latest"
	SortOldest SortOrder = "oldest"
	SortMatch  SortOrder = "match"
	SortSalary SortOrder = "salary"
)

// SortOrders lists the supported orders
var SortOrders = []SortOrder{SortLatest, SortOldest, SortMatch, SortSalary}

// ParseSortOrder accepts the sort names case-insensitively
func ParseSortOrder(s string) (SortOrder, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "latest":
		return SortLatest, true
	case "oldest":
		return SortOldest, true
	case "match", "matchscore", "score":
		return SortMatch, true
	case "salary":
		return SortSalary, true
	}
	return "", false
}

// Filter returns the jobs passing every filter. statuses maps job id to its
// tracked status; untracked jobs count as Not Applied. minScore is used when
// OnlyMatches is set.
func Filter(jobs []models.ScoredJob, f Filters, statuses map[string]models.JobStatus, minScore int) []models.ScoredJob {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]models.ScoredJob, 0, len(jobs))
	for _, job := range jobs {
		if search != "" && !matchesSearch(job.Job, search) {
			continue
		}
		if !matchesField(f.Location, job.Location) ||
			!matchesField(f.Mode, string(job.Mode)) ||
			!matchesField(f.Experience, job.Experience) ||
			!matchesField(f.Source, job.Source) {
			continue
		}
		if f.OnlyMatches && job.MatchScore < minScore {
			continue
		}
		status := statuses[job.ID]
		if status == "" {
			status = models.StatusNotApplied
		}
		if !matchesField(f.Status, string(status)) {
			continue
		}
		out = append(out, job)
	}
	return out
}

// Sort orders jobs in place. Jobs that compare equal keep their order.
func Sort(jobs []models.ScoredJob, order SortOrder) {
	var less func(a, b models.ScoredJob) bool
	switch order {
	case SortOldest:
		less = func(a, b models.ScoredJob) bool { return a.PostedDaysAgo > b.PostedDaysAgo }
	case SortMatch:
		less = func(a, b models.ScoredJob) bool { return a.MatchScore > b.MatchScore }
	case SortSalary:
		less = func(a, b models.ScoredJob) bool { return SalaryValue(a.SalaryRange) > SalaryValue(b.SalaryRange) }
	default:
		less = func(a, b models.ScoredJob) bool { return a.PostedDaysAgo < b.PostedDaysAgo }
	}
	sort.SliceStable(jobs, func(i, j int) bool { return less(jobs[i], jobs[j]) })
}

var (
	monthlyPattern = regexp.MustCompile(`₹(\d+)k`)
	numberPattern  = regexp.MustCompile(`\d+\.?\d*`)
)

// SalaryValue converts salary text to an approximate yearly amount in rupees.
// "₹25k–₹40k/month" reads the first monthly figure; "6–10 LPA" reads the first
// number as lakhs.
func SalaryValue(salary string) int {
	if m := monthlyPattern.FindStringSubmatch(salary); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n * 12 * 1000
	}
	if m := numberPattern.FindString(salary); m != "" {
		f, _ := strconv.ParseFloat(m, 64)
		return int(f * 100000)
	}
	return 0
}

func matchesSearch(job models.Job, search string) bool {
	if strings.Contains(strings.ToLower(job.Title), search) ||
		strings.Contains(strings.ToLower(job.Company), search) {
		return true
	}
	for _, s := range job.Skills {
		if strings.Contains(strings.ToLower(s), search) {
			return true
		}
	}
	return false
}

func matchesField(filter, value string) bool {
	return filter == "" || filter == FilterAll || strings.EqualFold(filter, value)
}
