package matcher

import (
	"slices"
	"sort"
	"strings"

	"github.com/khrees2412/careerkit/pkg/models"
)

// DigestSize is the number of jobs in a daily digest
const DigestSize = 10

// CalculateMatchScore calculates how well a job matches the user's
// preferences. Returns a score between 0 and 100; preferences without role
// keywords never match.
func CalculateMatchScore(job models.Job, prefs models.Preferences) int {
	keywords := splitList(prefs.RoleKeywords)
	if len(keywords) == 0 {
		return 0
	}

	score := 0

	// Factor 1: role keyword in title (+25) and in description (+15)
	if containsAny(strings.ToLower(job.Title), keywords) {
		score += 25
	}
	if containsAny(strings.ToLower(job.Description), keywords) {
		score += 15
	}

	// Factor 2: location and work mode
	if slices.Contains(prefs.PreferredLocations, job.Location) {
		score += 15
	}
	if slices.Contains(prefs.PreferredMode, string(job.Mode)) {
		score += 10
	}

	// Factor 3: experience band
	if prefs.ExperienceLevel != "" && prefs.ExperienceLevel != models.ExperienceAll && prefs.ExperienceLevel == job.Experience {
		score += 10
	}

	// Factor 4: skill overlap
	if matchSkills(job.Skills, splitList(prefs.Skills)) {
		score += 15
	}

	// Factor 5: freshness and source
	if job.PostedDaysAgo <= 2 {
		score += 5
	}
	if job.Source == "LinkedIn" {
		score += 5
	}

	return min(score, 100)
}

// ScoreAll pairs every job with its match score, keeping catalog order
func ScoreAll(jobs []models.Job, prefs models.Preferences) []models.ScoredJob {
	scored := make([]models.ScoredJob, len(jobs))
	for i, job := range jobs {
		scored[i] = models.ScoredJob{Job: job, MatchScore: CalculateMatchScore(job, prefs)}
	}
	return scored
}

// TopMatches returns the n best jobs by score, ties broken by the most
// recently posted
func TopMatches(jobs []models.Job, prefs models.Preferences, n int) []models.ScoredJob {
	scored := ScoreAll(jobs, prefs)
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].MatchScore != scored[j].MatchScore {
			return scored[i].MatchScore > scored[j].MatchScore
		}
		return scored[i].PostedDaysAgo < scored[j].PostedDaysAgo
	})
	if n >= 0 && n < len(scored) {
		scored = scored[:n]
	}
	return scored
}

// splitList lowercases a comma separated list, trims entries and drops empty
// ones
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(strings.ToLower(s), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

// matchSkills reports whether any preferred skill is one of the job's skills
func matchSkills(jobSkills, preferred []string) bool {
	if len(preferred) == 0 {
		return false
	}
	lower := make([]string, len(jobSkills))
	for i, s := range jobSkills {
		lower[i] = strings.ToLower(s)
	}
	for _, p := range preferred {
		if slices.Contains(lower, p) {
			return true
		}
	}
	return false
}
