// Package ats scores a resume the way an applicant tracking system might
// screen it.
package ats

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/khrees2412/careerkit/pkg/models"
)

// MinSkills is the skill count needed for the skills rule
const MinSkills = 5

// ActionVerbs are the verbs looked for in a summary
var ActionVerbs = []string{
	"built", "led", "designed", "improved", "developed", "managed", "created",
	"implemented", "optimized", "achieved", "launched", "drove", "architected",
	"engineered", "mentored", "accelerated", "delivered",
}

// Suggestion is one unmet rule and the points it would add
type Suggestion struct {
	Text   string `json:"text"`
	Points int    `json:"points"`
}

// Result is the score of a resume with the improvements still available
type Result struct {
	Score       int          `json:"score"`
	Suggestions []Suggestion `json:"suggestions"`
}

type rule struct {
	points     int
	satisfied  func(r models.Resume) bool
	suggestion func(r models.Resume) string
}

func fixed(text string) func(models.Resume) string {
	return func(models.Resume) string { return text }
}

// rules are evaluated and reported in declaration order
var rules = []rule{
	{10, func(r models.Resume) bool { return r.PersonalInfo.Name != "" }, fixed("Add your full name")},
	{10, func(r models.Resume) bool { return r.PersonalInfo.Email != "" }, fixed("Add your email address")},
	{10, func(r models.Resume) bool { return utf8.RuneCountInString(r.Summary) > 50 }, fixed("Write a summary of at least 50 characters")},
	{10, summaryHasActionVerb, fixed("Include action verbs in your summary (e.g., built, led)")},
	{15, hasDescribedExperience, fixed("Add at least one work experience entry")},
	{10, func(r models.Resume) bool { return len(r.Education) > 0 }, fixed("Add your education history")},
	{10, func(r models.Resume) bool { return r.Skills.Count() >= MinSkills }, func(r models.Resume) string {
		return fmt.Sprintf("Add at least %d more skills", MinSkills-r.Skills.Count())
	}},
	{10, func(r models.Resume) bool { return len(r.Projects) > 0 }, fixed("Add at least one project")},
	{5, func(r models.Resume) bool { return r.PersonalInfo.Phone != "" }, fixed("Add your phone number")},
	{5, func(r models.Resume) bool { return r.Links.LinkedIn != "" }, fixed("Add your LinkedIn profile link")},
	{5, func(r models.Resume) bool { return r.Links.GitHub != "" }, fixed("Add your GitHub profile link")},
}

// Score evaluates every rule against the resume
func Score(r models.Resume) Result {
	res := Result{Suggestions: []Suggestion{}}
	for _, rl := range rules {
		if rl.satisfied(r) {
			res.Score += rl.points
			continue
		}
		res.Suggestions = append(res.Suggestions, Suggestion{Text: rl.suggestion(r), Points: rl.points})
	}
	res.Score = min(max(res.Score, 0), 100)
	return res
}

// Top returns at most n suggestions
func (r Result) Top(n int) []Suggestion {
	if n < len(r.Suggestions) {
		return r.Suggestions[:n]
	}
	return r.Suggestions
}

// Band labels a score
func Band(score int) string {
	switch {
	case score < 41:
		return "Needs Work"
	case score < 71:
		return "Getting There"
	default:
		return "Strong Resume"
	}
}

func summaryHasActionVerb(r models.Resume) bool {
	summary := strings.ToLower(r.Summary)
	if summary == "" {
		return false
	}
	for _, verb := range ActionVerbs {
		if strings.Contains(summary, verb) {
			return true
		}
	}
	return false
}

func hasDescribedExperience(r models.Resume) bool {
	for _, e := range r.Experience {
		if e.Description != "" {
			return true
		}
	}
	return false
}
